// Package crs estimates a Comprehensive Ranking System score for a single
// candidate profile from five factors: age, education, first official
// language, canadian work experience and foreign work experience.
//
// The scoring tables are fail-soft: an unknown categorical value or an age
// outside the scored brackets contributes 0 points instead of returning an
// error. Callers that want typos rejected must opt in via ValidateProfile
// before scoring.
package crs

type (
	Education      string
	Language       string
	WorkExperience string
)

const (
	NoEducation           Education = "no_education"
	Secondary             Education = "secondary"
	OneYearPostsecondary  Education = "one_year_postsecondary"
	TwoYearPostsecondary  Education = "two_year_postsecondary"
	BachelorThreeYear     Education = "bachelor_3year"
	TwoOrMoreCertificates Education = "two_or_more_certificates"
	BachelorFourYear      Education = "bachelor_4year"
	MasterDegree          Education = "master_degree"
	ProfessionalDegree    Education = "professional_degree"
	DoctoralDegree        Education = "doctoral_degree"
)

const (
	CLB4Below Language = "clb_4_below"
	CLB5      Language = "clb_5"
	CLB6      Language = "clb_6"
	CLB7      Language = "clb_7"
	CLB8      Language = "clb_8"
	CLB9      Language = "clb_9"
	CLB10Plus Language = "clb_10_plus"
)

const (
	NoExperience WorkExperience = "0_years"
	OneYear      WorkExperience = "1_year"
	TwoYears     WorkExperience = "2_years"
	ThreeYears   WorkExperience = "3_years"
	FourYears    WorkExperience = "4_years"
	FiveYears    WorkExperience = "5_years"
	SixPlusYears WorkExperience = "6_plus_years"
)

// Educations lists all known education levels in increasing credential order.
func Educations() []Education {
	return []Education{
		NoEducation,
		Secondary,
		OneYearPostsecondary,
		TwoYearPostsecondary,
		BachelorThreeYear,
		TwoOrMoreCertificates,
		BachelorFourYear,
		MasterDegree,
		ProfessionalDegree,
		DoctoralDegree,
	}
}

// Languages lists all known CLB levels from lowest to highest.
func Languages() []Language {
	return []Language{CLB4Below, CLB5, CLB6, CLB7, CLB8, CLB9, CLB10Plus}
}

// WorkExperiences lists all known work experience buckets from lowest to highest.
func WorkExperiences() []WorkExperience {
	return []WorkExperience{
		NoExperience,
		OneYear,
		TwoYears,
		ThreeYears,
		FourYears,
		FiveYears,
		SixPlusYears,
	}
}

// Profile is a single candidate answer set. It is a plain value constructed
// fresh for every evaluation; the engine never mutates or retains it.
type Profile struct {
	Age            int            `mapstructure:"age"`
	Education      Education      `mapstructure:"education"`
	Language       Language       `mapstructure:"language"`
	WorkExperience WorkExperience `mapstructure:"work-experience"`
	// ForeignYears is raw years of foreign work experience. It is bucketed
	// into the same categories as WorkExperience before any lookup.
	ForeignYears int `mapstructure:"foreign-years"`
}

// WorkExperienceFromYears buckets a raw year count into the categorical
// experience values used by the tables. Anything at or above 6 years is
// treated as "6_plus_years"; negative values fall into the zero bucket.
func WorkExperienceFromYears(years int) WorkExperience {
	switch {
	case years <= 0:
		return NoExperience
	case years == 1:
		return OneYear
	case years == 2:
		return TwoYears
	case years == 3:
		return ThreeYears
	case years == 4:
		return FourYears
	case years == 5:
		return FiveYears
	default:
		return SixPlusYears
	}
}
