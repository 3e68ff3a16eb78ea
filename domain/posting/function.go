package posting

import (
	"regexp"
	"strings"
)

// Function is a fixed job-function category.
type Function string

// Function values.
const (
	FunctionSales       Function = "sales"
	FunctionEngineering Function = "engineering"
	FunctionData        Function = "data"
	FunctionProduct     Function = "product"
	FunctionMarketing   Function = "marketing"
	FunctionFinance     Function = "finance"
	FunctionPeople      Function = "people"
	FunctionLegal       Function = "legal"
	FunctionOperations  Function = "operations"
	FunctionOther       Function = "other"
)

// departmentToFunction maps exact lower-cased department labels to functions.
// A hit here short-circuits title classification entirely.
var departmentToFunction = map[string]Function{
	"account executive":                  FunctionSales,
	"account management":                 FunctionSales,
	"business development":               FunctionSales,
	"sales":                              FunctionSales,
	"sales development":                  FunctionSales,
	"sales operations":                   FunctionSales,
	"sales enablement":                   FunctionSales,
	"sales strategy":                     FunctionSales,
	"sales strategy & operations":        FunctionSales,
	"cartax sales":                       FunctionSales,
	"revenue":                            FunctionSales,
	"engineering":                        FunctionEngineering,
	"engineering leadership":             FunctionEngineering,
	"infrastructure":                     FunctionEngineering,
	"site reliability":                   FunctionEngineering,
	"mobile":                             FunctionEngineering,
	"information security & it":          FunctionEngineering,
	"business systems":                   FunctionEngineering,
	"data & machine learning":            FunctionData,
	"product":                            FunctionProduct,
	"design":                             FunctionProduct,
	"r&d operations":                     FunctionProduct,
	"marketing":                          FunctionMarketing,
	"brand marketing":                    FunctionMarketing,
	"demand generation":                  FunctionMarketing,
	"marketing operations":               FunctionMarketing,
	"product marketing":                  FunctionMarketing,
	"finance":                            FunctionFinance,
	"strategic finance":                  FunctionFinance,
	"accounting":                         FunctionFinance,
	"treasury":                           FunctionFinance,
	"procurement":                        FunctionFinance,
	"tax":                                FunctionFinance,
	"valuations":                         FunctionFinance,
	"people":                             FunctionPeople,
	"human resources":                    FunctionPeople,
	"recruiting":                         FunctionPeople,
	"total rewards":                      FunctionPeople,
	"learning & development":             FunctionPeople,
	"legal":                              FunctionLegal,
	"compliance":                         FunctionLegal,
	"policy":                             FunctionLegal,
	"policy & strategy":                  FunctionLegal,
	"customer success":                   FunctionOperations,
	"customer support":                   FunctionOperations,
	"customer implementations":           FunctionOperations,
	"delivery operations":                FunctionOperations,
	"operations & underwriting":          FunctionOperations,
	"strategy & business operations":     FunctionOperations,
	"fund administration":                FunctionOperations,
	"broker & market operations":         FunctionOperations,
	"portfolio insights":                 FunctionOperations,
	"administrative":                     FunctionOperations,
	"real estate and workplace services": FunctionOperations,
	"liquidity":                          FunctionOperations,
	"executive":                          FunctionOther,
	"executive assistant":                FunctionOperations,
	"confidential":                       FunctionOther,
}

// functionRule pairs a title pattern with the function it implies.
type functionRule struct {
	pattern  *regexp.Regexp
	function Function
}

// titleToFunction is an ordered rule table; the first matching rule wins.
var titleToFunction = []functionRule{
	{regexp.MustCompile(`\b(engineer|developer|sre|devops|architect|infrastructure)\b`), FunctionEngineering},
	{regexp.MustCompile(`\b(data scientist|data engineer|machine learning|ml engineer|analytics)\b`), FunctionData},
	{regexp.MustCompile(`\b(product manager|product lead|product director)\b`), FunctionProduct},
	{regexp.MustCompile(`\b(designer|ux|ui)\b`), FunctionProduct},
	{regexp.MustCompile(`\b(account executive|ae|sales|sdr|bdr|business development)\b`), FunctionSales},
	{regexp.MustCompile(`\b(marketing|demand gen|content|brand|growth)\b`), FunctionMarketing},
	{regexp.MustCompile(`\b(finance|accounting|controller|tax|treasury)\b`), FunctionFinance},
	{regexp.MustCompile(`\b(recruiter|talent|people|hr|human resources|hrbp)\b`), FunctionPeople},
	{regexp.MustCompile(`\b(legal|counsel|compliance|paralegal)\b`), FunctionLegal},
	{regexp.MustCompile(`\b(operations|support|success|implementation|onboarding)\b`), FunctionOperations},
}

// ClassifyFunction maps a department label or, failing that, a title, to a
// job-function category. An exact department hit is returned immediately
// without consulting the title. No match at all returns FunctionOther.
func ClassifyFunction(department, title string) Function {
	if department != "" {
		if fn, ok := departmentToFunction[strings.ToLower(strings.TrimSpace(department))]; ok {
			return fn
		}
	}

	titleLower := strings.ToLower(title)
	for _, rule := range titleToFunction {
		if rule.pattern.MatchString(titleLower) {
			return rule.function
		}
	}
	return FunctionOther
}
