package corpus

import "testing"

func TestMatches_AuthorAndYear(t *testing.T) {
	cases := []struct {
		filename   string
		authorYear string
		want       bool
	}{
		{"Smith_2020_RNAseq.txt", "Smith2020", true},
		{"Jones_2019.txt", "Smith2020", false},
		{"Soneson et al. - 2014 - Batch effect confounding.txt", "Soneson2014", true},
		{"Soneson et al. - 2014 - Batch effect confounding.txt", "Soneson2015", false},
		{"Luo et al. - 2010 - MAQC-II.txt", "Luo2010", true},
		{"Smith and Jones - 2020 - Sequencing depth.txt", "Jones2020", true},
	}

	for _, c := range cases {
		got := Matches(c.filename, c.authorYear)
		if got != c.want {
			t.Errorf("Matches(%q, %q): expected %v, got %v", c.filename, c.authorYear, c.want, got)
		}
	}
}

func TestMatches_DirectContainment(t *testing.T) {
	if !Matches("review-smith2020-final.txt", "Smith2020") {
		t.Error("Expected direct containment of the normalized designator to match")
	}
}

func TestMatches_NoYearInDesignator(t *testing.T) {
	if Matches("Smith_2020_RNAseq.txt", "Smith") {
		t.Error("Expected designator without a year to never match")
	}
}

func TestMatches_YearMissingFromFilename(t *testing.T) {
	if Matches("Smith_RNAseq_notes.txt", "Smith2020") {
		t.Error("Expected filename without the year to never match")
	}
}

func TestMatches_ShortAuthorWholeWord(t *testing.T) {
	if !Matches("Du - 2020 - Single cell atlas.txt", "Du2020") {
		t.Error("Expected short author fragment to match on word boundary")
	}
	if Matches("Dupont - 2020 - Proteomics.txt", "Du2020") {
		t.Error("Expected short author fragment not to match inside a longer name")
	}
}

func TestMatches_Diacritics(t *testing.T) {
	if !Matches("Müller et al. - 2018 - Expression atlas.txt", "Muller2018") {
		t.Error("Expected accented author names to match their plain form")
	}
}

func TestMatches_EmptyInputs(t *testing.T) {
	if Matches("", "Smith2020") {
		t.Error("Expected empty filename not to match")
	}
	if Matches("Smith_2020.txt", "") {
		t.Error("Expected empty designator not to match")
	}
}
