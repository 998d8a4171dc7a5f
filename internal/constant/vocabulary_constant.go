package constant

import "sort"

// Diseases maps the display names accepted on submission to disease nodes.
var Diseases = map[string]string{
	"Rice Blast":            "Rice_Blast",
	"False Smut":            "False_Smut",
	"Sheath Blight":         "Sheath_Blight",
	"Bacterial Leaf Blight": "Bacterial_Leaf_Blight",
	"Sheath Rot":            "Sheath_Rot",
}

// Locations maps district names to location nodes. "Battiocaloa" is the
// spelling the knowledge base uses.
var Locations = map[string]string{
	"Ampara":       "Ampara",
	"Anuradhapura": "Anuradhapura",
	"Badulla":      "Badulla",
	"Battiocaloa":  "Battiocaloa",
	"Colombo":      "Colombo",
	"Galle":        "Galle",
	"Gampaha":      "Gampaha",
	"Hambantota":   "Hambantota",
	"Jaffna":       "Jaffna",
	"Kalutara":     "Kalutara",
	"Kandy":        "Kandy",
	"Kilinochchi":  "Kilinochchi",
	"Kurunegala":   "Kurunegala",
	"Mannar":       "Mannar",
	"Matale":       "Matale",
	"Monaragala":   "Monaragala",
	"Mullaitivu":   "Mullaitivu",
	"Polonnaruwa":  "Polonnaruwa",
	"Puttalam":     "Puttalam",
	"Rathnapura":   "Rathnapura",
	"Trincomalee":  "Trincomalee",
	"Vavuniya":     "Vavuniya",
}

func DiseaseNames() []string {
	return sortedKeys(Diseases)
}

func LocationNames() []string {
	return sortedKeys(Locations)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
