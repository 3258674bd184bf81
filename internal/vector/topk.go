package vector

import "strings"

// Category is a coarse query class used to pick retrieval breadth and the
// context budget. Classification is ordered keyword containment, first match
// wins; nothing is ever unmatched because default always applies.
type Category string

const (
	CategoryGreeting       Category = "greeting"
	CategoryExecutive      Category = "executive"
	CategoryEmployeeSearch Category = "employee_search"
	CategoryCalculation    Category = "calculation"
	CategoryComplex        Category = "complex"
	CategoryDefault        Category = "default"
)

// topKConfig tunes result counts per query class: broad for multi-faceted
// questions, minimal for greetings.
var topKConfig = map[Category]int{
	CategoryDefault:        8,
	CategoryEmployeeSearch: 5,
	CategoryCalculation:    3,
	CategoryGreeting:       1,
	CategoryExecutive:      2,
	CategoryComplex:        12,
}

// contextBudget caps the concatenated context in characters per query class.
var contextBudget = map[Category]int{
	CategoryDefault:        3000,
	CategoryEmployeeSearch: 2000,
	CategoryCalculation:    1500,
	CategoryGreeting:       500,
	CategoryExecutive:      1000,
	CategoryComplex:        3500,
}

var (
	greetingKeywords  = []string{"hello", "hi", "hey", "greetings"}
	executiveKeywords = []string{"ceo", "coo", "cto", "chairman", "co-founder", "founder", "managing director"}
	employeeKeywords  = []string{"who is", "who are", "find employee", "contact", "email"}
	calcKeywords      = []string{"calculate", "salary", "breakdown", "basic salary"}
)

func Classify(query string) Category {
	lower := strings.ToLower(query)
	words := strings.Fields(lower)

	if containsAny(words, greetingKeywords) {
		return CategoryGreeting
	}
	if containsAnySubstring(lower, executiveKeywords) {
		return CategoryExecutive
	}
	if containsAnySubstring(lower, employeeKeywords) {
		return CategoryEmployeeSearch
	}
	if containsAnySubstring(lower, calcKeywords) {
		return CategoryCalculation
	}
	if len(words) > 15 || strings.Count(query, "?") > 1 {
		return CategoryComplex
	}
	return CategoryDefault
}

func TopK(c Category) int {
	if k, ok := topKConfig[c]; ok {
		return k
	}
	return topKConfig[CategoryDefault]
}

func ContextBudget(c Category) int {
	if b, ok := contextBudget[c]; ok {
		return b
	}
	return contextBudget[CategoryDefault]
}

func containsAny(words []string, keywords []string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}

func containsAnySubstring(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
