package category

// Subject area codes used by the exam catalog.
const (
	Architecture = "architecture"
	Structure    = "structure"
	Construction = "construction"
	Management   = "management"
	Law          = "law"
)

var names = map[string]string{
	Architecture: "建築学",
	Structure:    "構造",
	Construction: "施工",
	Management:   "施工管理法",
	Law:          "法規",
}

// Name returns the display label for a category code, or the code itself
// when it is not a known subject area.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
