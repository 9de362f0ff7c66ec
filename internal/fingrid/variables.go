package fingrid

import "github.com/fingrid-tools/gridview/internal/models"

// CommonVariables returns the static reference table of well-known
// electricity variables. The list is informational only: the API accepts
// any ID, and unknown IDs surface as a 404.
func CommonVariables() []models.VariableInfo {
	return []models.VariableInfo{
		{ID: 124, Description: "Production (Hydro)"},
		{ID: 100, Description: "Production (Wind)"},
		{ID: 101, Description: "Production (Thermal)"},
		{ID: 102, Description: "Production (Solar)"},
		{ID: 74, Description: "Electricity generation"},
		{ID: 172, Description: "Load forecast"},
		{ID: 191, Description: "Reserved capacity"},
		{ID: 200, Description: "Cross-border flow"},
	}
}
