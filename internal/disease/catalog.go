package disease

import (
	"fmt"
	"strings"
)

// ID names one of the supported diseases.
type ID string

const (
	Diabetes   ID = "diabetes"
	Heart      ID = "heart"
	Parkinsons ID = "parkinsons"
)

// Disease bundles everything needed to turn user input into a diagnosis
// for one classifier.
type Disease struct {
	ID       ID           `json:"id"`
	Title    string       `json:"title"`
	Icon     string       `json:"icon"`
	Prompt   string       `json:"prompt"`
	Spec     Spec         `json:"features"`
	Defaults DefaultTable `json:"defaults"`
	Positive string       `json:"-"`
	Negative string       `json:"-"`
}

// All returns the supported diseases in navigation order.
func All() []Disease {
	return []Disease{diabetes(), heart(), parkinsons()}
}

// Lookup returns the disease registered under id. Matching ignores case and
// surrounding whitespace.
func Lookup(id string) (Disease, error) {
	key := ID(strings.ToLower(strings.TrimSpace(id)))
	for _, d := range All() {
		if d.ID == key {
			return d, nil
		}
	}
	return Disease{}, fmt.Errorf("%w: %q", ErrUnknownDisease, id)
}

func diabetes() Disease {
	return Disease{
		ID:     Diabetes,
		Title:  "Diabetes Prediction",
		Icon:   "activity",
		Prompt: "Enter the following essential information:",
		Spec: Spec{
			{Name: "Pregnancies", Label: "Number of Pregnancies", Kind: KindFloat, Min: 0, Max: 20},
			{Name: "Glucose", Label: "Glucose Level (mg/dL)", Kind: KindInt, Min: 0, Max: 500, Step: 1, Initial: 120, Essential: true},
			{Name: "BloodPressure", Label: "Blood Pressure (mmHg)", Kind: KindInt, Min: 0, Max: 200, Step: 1, Initial: 80, Essential: true},
			{Name: "SkinThickness", Label: "Skin Thickness (mm)", Kind: KindFloat, Min: 0, Max: 100},
			{Name: "Insulin", Label: "Insulin Level (mu U/ml)", Kind: KindFloat, Min: 0, Max: 900},
			{Name: "BMI", Label: "BMI (Body Mass Index)", Kind: KindFloat, Min: 10, Max: 60, Step: 0.1, Initial: 25, Essential: true},
			{Name: "DiabetesPedigreeFunction", Label: "Diabetes Pedigree Function", Kind: KindFloat, Min: 0, Max: 3},
			{Name: "Age", Label: "Age", Kind: KindInt, Min: 0, Max: 120, Step: 1, Initial: 30, Essential: true},
		},
		Defaults: NewDefaultTable(map[string]float64{
			"Pregnancies":              3.8,
			"SkinThickness":            20.5,
			"Insulin":                  79.8,
			"DiabetesPedigreeFunction": 0.47,
		}),
		Positive: "⚠️ The person is diabetic",
		Negative: "✅ The person is not diabetic",
	}
}

func heart() Disease {
	return Disease{
		ID:     Heart,
		Title:  "Heart Disease Prediction",
		Icon:   "heart",
		Prompt: "Enter the following essential information:",
		Spec: Spec{
			{Name: "age", Label: "Age", Kind: KindInt, Min: 0, Max: 120, Step: 1, Initial: 50, Essential: true},
			{Name: "sex", Label: "Sex", Kind: KindInt, Min: 0, Max: 1, Initial: 1, Essential: true, Options: []Option{
				{Label: "Male", Value: 1},
				{Label: "Female", Value: 0},
			}},
			{Name: "cp", Label: "Chest Pain Type", Kind: KindInt, Min: 0, Max: 3, Initial: 0, Essential: true, Options: []Option{
				{Label: "Typical Angina", Value: 0},
				{Label: "Atypical Angina", Value: 1},
				{Label: "Non-anginal Pain", Value: 2},
				{Label: "Asymptomatic", Value: 3},
			}},
			{Name: "trestbps", Label: "Resting Blood Pressure (mmHg)", Kind: KindInt, Min: 0, Max: 250, Step: 1, Initial: 130, Essential: true},
			{Name: "chol", Label: "Cholesterol Level (mg/dL)", Kind: KindInt, Min: 0, Max: 600, Step: 1, Initial: 240, Essential: true},
			{Name: "fbs", Label: "Fasting Blood Sugar > 120 mg/dl", Kind: KindInt, Min: 0, Max: 1},
			{Name: "restecg", Label: "Resting ECG", Kind: KindInt, Min: 0, Max: 2},
			{Name: "thalach", Label: "Maximum Heart Rate Achieved", Kind: KindInt, Min: 0, Max: 250, Step: 1, Initial: 150, Essential: true},
			{Name: "exang", Label: "Exercise Induced Angina", Kind: KindInt, Min: 0, Max: 1},
			{Name: "oldpeak", Label: "ST Depression", Kind: KindFloat, Min: 0, Max: 10},
			{Name: "slope", Label: "Slope of Peak Exercise ST Segment", Kind: KindInt, Min: 0, Max: 2},
			{Name: "ca", Label: "Major Vessels Colored by Fluoroscopy", Kind: KindInt, Min: 0, Max: 3},
			{Name: "thal", Label: "Thalassemia", Kind: KindInt, Min: 0, Max: 3},
		},
		Defaults: NewDefaultTable(map[string]float64{
			"fbs":     0,
			"restecg": 1,
			"exang":   0,
			"oldpeak": 1.0,
			"slope":   1,
			"ca":      0,
			"thal":    2,
		}),
		Positive: "⚠️ The person is having heart disease",
		Negative: "✅ The person does not have any heart disease",
	}
}

func parkinsons() Disease {
	return Disease{
		ID:     Parkinsons,
		Title:  "Parkinsons Prediction",
		Icon:   "person",
		Prompt: "Enter the following essential voice analysis parameters:",
		Spec: Spec{
			{Name: "MDVP:Fo(Hz)", Label: "MDVP:Fo(Hz) - Average vocal fundamental frequency", Kind: KindFloat, Min: 80, Max: 300, Step: 0.1, Initial: 150, Essential: true},
			{Name: "MDVP:Fhi(Hz)", Label: "MDVP:Fhi(Hz) - Maximum vocal fundamental frequency", Kind: KindFloat, Min: 100, Max: 600},
			{Name: "MDVP:Flo(Hz)", Label: "MDVP:Flo(Hz) - Minimum vocal fundamental frequency", Kind: KindFloat, Min: 60, Max: 250},
			{Name: "MDVP:Jitter(%)", Label: "MDVP:Jitter(%) - Variation in fundamental frequency", Kind: KindFloat, Min: 0, Max: 0.1, Step: 0.0001, Initial: 0.005, Essential: true},
			{Name: "MDVP:Jitter(Abs)", Kind: KindFloat, Min: 0, Max: 0.001},
			{Name: "MDVP:RAP", Kind: KindFloat, Min: 0, Max: 0.05},
			{Name: "MDVP:PPQ", Kind: KindFloat, Min: 0, Max: 0.05},
			{Name: "Jitter:DDP", Kind: KindFloat, Min: 0, Max: 0.1},
			{Name: "MDVP:Shimmer", Kind: KindFloat, Min: 0, Max: 0.2},
			{Name: "MDVP:Shimmer(dB)", Kind: KindFloat, Min: 0, Max: 2},
			{Name: "Shimmer:APQ3", Kind: KindFloat, Min: 0, Max: 0.1},
			{Name: "Shimmer:APQ5", Kind: KindFloat, Min: 0, Max: 0.1},
			{Name: "MDVP:APQ", Kind: KindFloat, Min: 0, Max: 0.2},
			{Name: "Shimmer:DDA", Kind: KindFloat, Min: 0, Max: 0.2},
			{Name: "NHR", Kind: KindFloat, Min: 0, Max: 0.5},
			{Name: "HNR", Label: "HNR - Harmonics to Noise Ratio", Kind: KindFloat, Min: 0, Max: 50, Step: 0.1, Initial: 20, Essential: true},
			{Name: "RPDE", Label: "RPDE - Nonlinear dynamical complexity measure", Kind: KindFloat, Min: 0, Max: 1, Step: 0.01, Initial: 0.4, Essential: true},
			{Name: "DFA", Label: "DFA - Signal fractal scaling exponent", Kind: KindFloat, Min: 0, Max: 1, Step: 0.01, Initial: 0.8, Essential: true},
			{Name: "spread1", Kind: KindFloat, Min: -8, Max: -2},
			{Name: "spread2", Kind: KindFloat, Min: 0, Max: 0.5},
			{Name: "D2", Kind: KindFloat, Min: 1, Max: 4},
			{Name: "PPE", Label: "PPE - Pitch period entropy", Kind: KindFloat, Min: 0, Max: 1, Step: 0.01, Initial: 0.1, Essential: true},
		},
		Defaults: NewDefaultTable(map[string]float64{
			"MDVP:Fhi(Hz)":     197.1,
			"MDVP:Flo(Hz)":     116.3,
			"MDVP:Jitter(Abs)": 0.00006,
			"MDVP:RAP":         0.003,
			"MDVP:PPQ":         0.0035,
			"Jitter:DDP":       0.009,
			"MDVP:Shimmer":     0.03,
			"MDVP:Shimmer(dB)": 0.31,
			"Shimmer:APQ3":     0.016,
			"Shimmer:APQ5":     0.02,
			"MDVP:APQ":         0.022,
			"Shimmer:DDA":      0.048,
			"NHR":              0.025,
			"spread1":          -5.7,
			"spread2":          0.23,
			"D2":               2.38,
		}),
		Positive: "⚠️ The person has Parkinson's disease",
		Negative: "✅ The person does not have Parkinson's disease",
	}
}
