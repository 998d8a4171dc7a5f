package entity

// Predicate and class names used in the paddy knowledge base. Spellings
// follow the published ontology, typos included.
const (
	PredType = "rdf:type"

	ClassTreatment          = "Treatments"
	ClassDisease            = "Disease"
	ClassControlMethod      = "ControlMethods"
	ClassSymptom            = "Symptoms"
	ClassEnvironment        = "EnvironmentalFactors"
	ClassDiseaseEnvironment = "EnvironmentalConditions"
	ClassLocation           = "Location"
	ClassAgent              = "CausalAgent"
	ClassUserGuideline      = "UserGuidelines"
	ClassGeneralGuideline   = "GeneralGuideline"
	ClassSession            = "User_Inputs"
)

// Disease
const (
	PredName            = "hasName"
	PredOverallSymptoms = "hasOverallSymptopms"
	PredSymptoms        = "hasSymptoms"
	PredSymptomsLegacy  = "hasSymptomps"
	PredControlMethods  = "hasControlMethods"
	PredCausedBy        = "causedBy"
	PredAffectedBy      = "getAffectedBy"
)

// Control method
const (
	PredMethod           = "hasMethod"
	PredTreatments       = "hasTreatments"
	PredTreatmentStatus  = "hasTreatmentStatus"
	PredProductName      = "hasProductName"
	PredDescription      = "hasDescription"
	PredActiveIngredient = "hasActiveIngredient"
)

// Treatment and its user guidelines
const (
	PredCost                 = "hasCost"
	PredEffectiveness        = "Effectiveness"
	PredEnvironmentImpact    = "EnvironmentImpact"
	PredImpact               = "hasImpact"
	PredCondition            = "hasCondtion"
	PredUserGuidelines       = "hasUserGuidelines"
	PredSafetyMeasures       = "hasSafetyMeasures"
	PredInstruction          = "hasInstruction"
	PredApplicationFrequency = "hasApplicationFrequency"
)

// Symptom
const (
	PredSymptomDescription = "symptomDescription"
	PredAffectedParts      = "hasAffectedParts"
	PredSymptomAffectedBy  = "AreAffectedBy"
)

// Environmental profile, symptom side. The plain humidity, soil moisture,
// light intensity and rainfall names double as the alternate location set.
const (
	PredSymptomTemperature = "hasTemperatureRange_symp"
	PredHumidity           = "hasHumidity"
	PredSoilMoisture       = "hasSoilMoisture"
	PredLightIntensity     = "hasLightIntensity"
	PredRainfall           = "hasRainfallPattern"
)

// Environmental profile, location side.
const (
	PredLocationHumidity     = "hasHumidity_L"
	PredLocationTemperature  = "hasTemperatureRange"
	PredLocationSoilMoisture = "hasSoilMoisture_L"
	PredLocationLight        = "hasLightIntensity_L"
	PredLocationRainfall     = "hasRainfallPattern_L"
)

// Disease environmental conditions.
const (
	PredConditionTemperature  = "hasTemperatureRange_ec"
	PredConditionHumidity     = "hasHumidity_ec"
	PredConditionSoilMoisture = "hasSoilMoisture_ec"
	PredConditionRainfall     = "hasRainfallPattern_ec"
)

// Causal agent and general guidelines
const (
	PredScientificName         = "hasScientificName"
	PredAgentType              = "hasType"
	PredGuidelineDesc          = "GDescription"
	PredGuidelineText          = "Guideline"
	TreatmentStatusRecommended = "R"
	TreatmentStatusGeneral     = "P"
)

// Session (user input)
const (
	PredSessionDisease       = "hasDiseasec"
	PredSessionLocation      = "hasLocationName"
	PredSessionBudget        = "hasUserBudget"
	PredSessionControlMethod = "hasControlMethodInput"
)

// Derived facts
const (
	PredPriority                = "priority"
	PredIsAffordable            = "isAffordable"
	PredIsControlMethodSuitable = "isControlMethodSuitable"
	PredIsSuitable              = "isSuitable"
	PredHasPrimarySource        = "hasPrimarySource"
	PredIsSpecific              = "isSpecific"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	True  = "true"
	False = "false"
)

// DerivedPredicates lists every predicate the pipeline writes.
var DerivedPredicates = []string{
	PredPriority,
	PredIsAffordable,
	PredIsControlMethodSuitable,
	PredIsSuitable,
	PredHasPrimarySource,
	PredIsSpecific,
}
