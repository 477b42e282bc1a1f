package crs

// ageBracket is a half-open range [Lo, Hi) of ages worth the same points.
type ageBracket struct {
	lo, hi int
	points int
}

// ageBrackets covers ages 18 through 46. Ages outside every bracket score 0.
// The list is small and ordered, a linear scan is enough.
var ageBrackets = []ageBracket{
	{18, 30, 110},
	{30, 32, 105},
	{32, 33, 100},
	{33, 34, 95},
	{34, 35, 90},
	{35, 36, 85},
	{36, 37, 80},
	{37, 38, 75},
	{38, 39, 70},
	{39, 40, 65},
	{40, 41, 60},
	{41, 42, 55},
	{42, 43, 50},
	{43, 44, 45},
	{44, 45, 35},
	{45, 47, 25},
}

var educationPoints = map[Education]int{
	NoEducation:           0,
	Secondary:             30,
	OneYearPostsecondary:  90,
	TwoYearPostsecondary:  98,
	BachelorThreeYear:     112,
	TwoOrMoreCertificates: 119,
	BachelorFourYear:      120,
	MasterDegree:          135,
	ProfessionalDegree:    135,
	DoctoralDegree:        150,
}

// languagePerSkill holds the points for each of the four language abilities
// (speaking, listening, reading, writing). The reported language score is
// four times this value.
var languagePerSkill = map[Language]int{
	CLB4Below: 0,
	CLB5:      6,
	CLB6:      8,
	CLB7:      16,
	CLB8:      23,
	CLB9:      31,
	CLB10Plus: 34,
}

const languageSkills = 4

// workExperiencePoints plateaus at five years.
var workExperiencePoints = map[WorkExperience]int{
	NoExperience: 0,
	OneYear:      40,
	TwoYears:     53,
	ThreeYears:   64,
	FourYears:    72,
	FiveYears:    80,
	SixPlusYears: 80,
}

// AgePoints returns the points for the given age, 0 when the age is outside
// the scored brackets.
func AgePoints(age int) int {
	for _, b := range ageBrackets {
		if age >= b.lo && age < b.hi {
			return b.points
		}
	}
	return 0
}

// EducationPoints returns the points for the given education level, 0 for an
// unknown level.
func EducationPoints(e Education) int {
	return educationPoints[e]
}

// LanguagePoints returns the total first-language points (all four abilities)
// for the given CLB level, 0 for an unknown level.
func LanguagePoints(l Language) int {
	return languagePerSkill[l] * languageSkills
}

// WorkExperiencePoints returns the points for the given experience bucket, 0
// for an unknown bucket.
func WorkExperiencePoints(w WorkExperience) int {
	return workExperiencePoints[w]
}
