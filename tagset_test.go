package es

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Tag
		want Tag
	}{
		{"NCP", "NNS"},
		{"NCS", "NN"},
		{"VAI", "MD"},
		{"VMI", "VB"},
		{"VSP", "VBN"},
		{"AQ", "JJ"},
		{"DA", "DT"},
		{"DP", "PRP$"},
		{"Fpa", "("},
		{"Fe", "\""},
		{"Zm", "CD"},
		{"XYZ", "XYZ"},
		{"NN", "NN"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tags := []Tag{"XYZ", "NNS", "foo", ""}
	for k := range ParoleTags() {
		tags = append(tags, k)
	}
	for _, tag := range tags {
		once := Normalize(tag)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", tag, twice, once)
		}
	}
}

func TestParoleTagsIsCopy(t *testing.T) {
	m := ParoleTags()
	m["NCP"] = "changed"
	if got := Normalize("NCP"); got != "NNS" {
		t.Errorf("Normalize(NCP) = %q after mutating a copy", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   Tag
		want Family
	}{
		{"DT", FamilyDeterminer},
		{"JJ", FamilyAdjective},
		{"JJR", FamilyAdjective},
		{"NNS", FamilyPluralNoun},
		{"NN", FamilyOther},
		{"NNP", FamilyOther},
		{"NNPS", FamilyOther},
		{"VB", FamilyVerb},
		{"VBN", FamilyVerb},
		{"VBG", FamilyVerb},
		{"MD", FamilyVerb},
		{"PRP$", FamilyOther},
		{"XYZ", FamilyOther},
		{"", FamilyOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAbbreviations(t *testing.T) {
	for _, a := range []string{"Dr.", "Sra.", "p.ej.", "etc.", "núm.", "W.C."} {
		if !Abbreviations.Has(a) {
			t.Errorf("Abbreviations missing %q", a)
		}
	}
	if Abbreviations.Has("Dr") {
		t.Error("Abbreviations contains \"Dr\" without period")
	}
	var empty AbbreviationSet
	if empty.Has("Dr.") {
		t.Error("nil AbbreviationSet reports a member")
	}
}
