// FILE: internal/dto/projection_dto.go
package dto

// Field names mirror the variable names the web client already reads.

type DiseaseDetailsResponse struct {
	Disease             string   `json:"disease"`
	DiseaseName         string   `json:"diseaseName"`
	OverallSymptoms     string   `json:"overallSymptoms"`
	PrimarySources      []string `json:"primarySources"`
	SymptomDescriptions string   `json:"symptomDescriptions"`
	AffectedParts       string   `json:"affectedParts"`
	Symptoms            string   `json:"symptoms"`
}

type RecommendedTreatmentResponse struct {
	ControlMethod             string `json:"controlMethod"`
	ProductName               string `json:"productName"`
	Treatment                 string `json:"treatment"`
	Effectiveness             string `json:"effectiveness,omitempty"`
	EnvironmentImpact         string `json:"environmentImpact,omitempty"`
	Impact                    string `json:"impact,omitempty"`
	Condition                 string `json:"condition,omitempty"`
	AllSafetyMeasures         string `json:"allSafetyMeasures"`
	AllInstructions           string `json:"allInstructions"`
	AllApplicationFrequencies string `json:"allApplicationFrequencies"`
}

type GeneralTreatmentResponse struct {
	Treatment               string `json:"treatment"`
	ControlMethodName       string `json:"controlMethodName"`
	MethodDescription       string `json:"methodDescription,omitempty"`
	ActiveIngredient        string `json:"activeIngredient,omitempty"`
	Effectiveness           string `json:"effectiveness"`
	EnvironmentImpactVal    string `json:"environmentImpactVal"`
	ImpactVal               string `json:"impactVal"`
	ConditionVal            string `json:"conditionVal"`
	SafetyMeasuresVal       string `json:"safetyMeasuresVal"`
	InstructionsVal         string `json:"instructionsVal"`
	ApplicationFrequencyVal string `json:"applicationFrequencyVal"`
}

type DiseaseAgentResponse struct {
	ScientificName string `json:"scientificName"`
	Type           string `json:"type"`
}

type DiseaseEnvironmentResponse struct {
	Temperature     string `json:"temperature"`
	Humidity        string `json:"humidity"`
	SoilMoisture    string `json:"soilMoisture"`
	RainfallPattern string `json:"rainfallPattern"`
}

type GeneralGuidelineResponse struct {
	GuidelineName string `json:"guidelineName"`
	GDescription  string `json:"gDescription,omitempty"`
	Guideline     string `json:"guideline,omitempty"`
}
