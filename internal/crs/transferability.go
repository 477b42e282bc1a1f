package crs

// TransferabilityCap is the maximum number of skill transferability points a
// profile can earn across all three factor combinations.
const TransferabilityCap = 100

type tierPair struct {
	a, b tier
}

// The three transferability sub-matrices. A pair missing from a matrix is
// worth 0 bonus points.
var (
	educationLanguageBonus = map[tierPair]int{
		{tierBachelorPlus, tierCLB7Plus}: 13,
		{tierBachelorPlus, tierCLB9Plus}: 25,
		{tierMasterPlus, tierCLB7Plus}:   25,
		{tierMasterPlus, tierCLB9Plus}:   50,
	}

	educationExperienceBonus = map[tierPair]int{
		{tierBachelorPlus, tierOneYearPlus}:   13,
		{tierBachelorPlus, tierThreeYearPlus}: 25,
		{tierMasterPlus, tierOneYearPlus}:     25,
		{tierMasterPlus, tierThreeYearPlus}:   50,
	}

	foreignLanguageBonus = map[tierPair]int{
		{tierForeignOneYear, tierCLB7Plus}:     13,
		{tierForeignTwoYearPlus, tierCLB7Plus}: 25,
		{tierForeignOneYear, tierCLB9Plus}:     25,
		{tierForeignTwoYearPlus, tierCLB9Plus}: 50,
	}
)

// TransferabilityPoints returns the skill transferability bonus for the
// profile: the sum of the education+language, education+experience and
// foreign-experience+language bonuses, clamped to TransferabilityCap.
func TransferabilityPoints(p Profile) int {
	edu := educationTier(p.Education)
	lang := languageTier(p.Language)

	total := educationLanguageBonus[tierPair{edu, lang}]
	total += educationExperienceBonus[tierPair{edu, experienceTier(p.WorkExperience)}]
	total += foreignLanguageBonus[tierPair{foreignTier(WorkExperienceFromYears(p.ForeignYears)), lang}]

	if total > TransferabilityCap {
		return TransferabilityCap
	}
	return total
}
