package crs

import "testing"

func TestEducationTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		education Education
		expect    tier
	}{
		{MasterDegree, tierMasterPlus},
		{ProfessionalDegree, tierMasterPlus},
		{DoctoralDegree, tierMasterPlus},
		{BachelorThreeYear, tierBachelorPlus},
		{BachelorFourYear, tierBachelorPlus},
		{TwoOrMoreCertificates, tierOther},
		{Secondary, tierOther},
		{Education("unknown"), tierOther},
	}

	for _, tt := range tests {
		if got := educationTier(tt.education); got != tt.expect {
			t.Fatalf("expected tier %s for %s, got %s", tt.expect, tt.education, got)
		}
	}
}

func TestLanguageTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language Language
		expect   tier
	}{
		{CLB9, tierCLB9Plus},
		{CLB10Plus, tierCLB9Plus},
		{CLB7, tierCLB7Plus},
		{CLB8, tierCLB7Plus},
		{CLB6, tierOther},
		{CLB4Below, tierOther},
	}

	for _, tt := range tests {
		if got := languageTier(tt.language); got != tt.expect {
			t.Fatalf("expected tier %s for %s, got %s", tt.expect, tt.language, got)
		}
	}
}

func TestExperienceTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		experience WorkExperience
		expect     tier
	}{
		{ThreeYears, tierThreeYearPlus},
		{SixPlusYears, tierThreeYearPlus},
		{OneYear, tierOneYearPlus},
		{TwoYears, tierOneYearPlus},
		{NoExperience, tierNone},
		// Anything but the zero bucket counts as at least one year.
		{WorkExperience("garbage"), tierOneYearPlus},
	}

	for _, tt := range tests {
		if got := experienceTier(tt.experience); got != tt.expect {
			t.Fatalf("expected tier %s for %s, got %s", tt.expect, tt.experience, got)
		}
	}
}

func TestForeignExperienceBucketingAndTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		years  int
		bucket WorkExperience
		expect tier
	}{
		{0, NoExperience, tierNone},
		{-3, NoExperience, tierNone},
		{1, OneYear, tierForeignOneYear},
		{2, TwoYears, tierForeignTwoYearPlus},
		{5, FiveYears, tierForeignTwoYearPlus},
		{6, SixPlusYears, tierForeignTwoYearPlus},
		{10, SixPlusYears, tierForeignTwoYearPlus},
	}

	for _, tt := range tests {
		bucket := WorkExperienceFromYears(tt.years)
		if bucket != tt.bucket {
			t.Fatalf("expected bucket %s for %d years, got %s", tt.bucket, tt.years, bucket)
		}
		if got := foreignTier(bucket); got != tt.expect {
			t.Fatalf("expected tier %s for %d years, got %s", tt.expect, tt.years, got)
		}
	}
}
