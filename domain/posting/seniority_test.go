package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySeniority(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  Seniority
	}{
		{name: "chief", title: "Chief Revenue Officer", want: SeniorityCLevel},
		{name: "evp", title: "EVP, Global Sales", want: SeniorityEVP},
		{name: "svp", title: "Senior Vice President of Product", want: SenioritySVP},
		{name: "vp", title: "VP of Engineering", want: SeniorityVP},
		{name: "senior director before director", title: "Senior Director of Engineering", want: SenioritySeniorDirector},
		{name: "director", title: "Director, Demand Generation", want: SeniorityDirector},
		{name: "head of", title: "Head of Design", want: SeniorityHead},
		{name: "senior manager before manager", title: "Senior Manager, Payroll Operations", want: SenioritySeniorManager},
		{name: "manager", title: "Engineering Manager", want: SeniorityManager},
		{name: "staff maps to senior", title: "Staff Software Engineer", want: SenioritySenior},
		{name: "principal maps to senior", title: "Principal Engineer", want: SenioritySenior},
		{name: "manager beats principal", title: "Principal Product Manager", want: SeniorityManager},
		{name: "senior", title: "Senior Data Analyst", want: SenioritySenior},
		{name: "sr abbreviation", title: "Sr. Backend Engineer", want: SenioritySenior},
		{name: "associate", title: "Associate Account Executive", want: SeniorityAssociate},
		{name: "junior", title: "Junior Designer", want: SeniorityEntry},
		{name: "intern", title: "Software Engineering Intern", want: SeniorityEntry},
		{name: "no match defaults to mid", title: "Software Engineer", want: SeniorityMid},
		{name: "empty title defaults to mid", title: "", want: SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeniority(tt.title))
		})
	}
}
