package utils

const (
	minHeightCm = 50
	maxHeightCm = 300
	minWeightKg = 10
	maxWeightKg = 300
)

func checkHeight(heightCm float64) error {
	if heightCm <= minHeightCm || heightCm > maxHeightCm {
		return &ValidationError{Reason: "height must be between 50 and 300 cm"}
	}
	return nil
}

func checkWeight(weightKg float64) error {
	if weightKg <= minWeightKg || weightKg > maxWeightKg {
		return &ValidationError{Reason: "weight must be between 10 and 300 kg"}
	}
	return nil
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if err := checkHeight(heightCm); err != nil {
		return 0, err
	}
	if err := checkWeight(weightKg); err != nil {
		return 0, err
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// IdealWeight returns the Devine ideal body weight in kilograms. The gender
// selector is binary: "male" takes the male formula, anything else the
// female one.
func IdealWeight(heightCm float64, gender string) (float64, error) {
	if err := checkHeight(heightCm); err != nil {
		return 0, err
	}

	inches := heightCm / 2.54
	over60 := inches - 60
	if over60 < 0 {
		over60 = 0
	}

	if gender == "male" {
		return 50.0 + 2.3*over60, nil
	}
	return 45.5 + 2.3*over60, nil
}
