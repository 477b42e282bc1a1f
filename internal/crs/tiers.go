package crs

// tier is a coarse classification used only as a key into the skill
// transferability matrices.
type tier string

const (
	tierOther tier = "other"
	tierNone  tier = "none"

	tierBachelorPlus tier = "bachelor_plus"
	tierMasterPlus   tier = "master_plus"

	tierCLB7Plus tier = "clb_7_plus"
	tierCLB9Plus tier = "clb_9_plus"

	tierOneYearPlus   tier = "1_year_plus"
	tierThreeYearPlus tier = "3_year_plus"

	tierForeignOneYear     tier = "1_year"
	tierForeignTwoYearPlus tier = "2_year_plus"
)

func educationTier(e Education) tier {
	switch e {
	case MasterDegree, ProfessionalDegree, DoctoralDegree:
		return tierMasterPlus
	case BachelorThreeYear, BachelorFourYear:
		return tierBachelorPlus
	default:
		return tierOther
	}
}

func languageTier(l Language) tier {
	switch l {
	case CLB9, CLB10Plus:
		return tierCLB9Plus
	case CLB7, CLB8:
		return tierCLB7Plus
	default:
		return tierOther
	}
}

// experienceTier deliberately treats every value other than the explicit
// zero bucket as at least one year, mirroring the official matrix rules.
func experienceTier(w WorkExperience) tier {
	switch w {
	case ThreeYears, FourYears, FiveYears, SixPlusYears:
		return tierThreeYearPlus
	case NoExperience:
		return tierNone
	default:
		return tierOneYearPlus
	}
}

// foreignTier classifies an already bucketed foreign experience value.
func foreignTier(w WorkExperience) tier {
	switch w {
	case TwoYears, ThreeYears, FourYears, FiveYears, SixPlusYears:
		return tierForeignTwoYearPlus
	case OneYear:
		return tierForeignOneYear
	default:
		return tierNone
	}
}
