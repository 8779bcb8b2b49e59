package validation

import (
	"regexp"
	"strings"

	"github.com/MarcGrol/shopfront/lib/myconfig"
	"github.com/MarcGrol/shopfront/lib/myerrors"
)

// Rule describes what a single field must satisfy. The Message is
// returned verbatim whenever the rule fails. Rules are configuration:
// loaded once, immutable for the process lifetime.
type Rule struct {
	Required bool
	Pattern  *regexp.Regexp
	Message  string
}

type RuleSet map[Field]Rule

// Errors maps a field to its failure message. A field that is absent
// is currently valid, so len(errors) == 0 is the validity predicate.
type Errors map[Field]string

// Engine is a stateless rule evaluator shared by every checkout form.
// New fields need a rule entry only, no code.
type Engine struct {
	rules RuleSet
}

func NewEngine(rules RuleSet) *Engine {
	return &Engine{
		rules: rules,
	}
}

// ValidateField returns "" when the value passes. A field without a
// configured rule is always valid.
func (e *Engine) ValidateField(field Field, value string) string {
	rule, exists := e.rules[field]
	if !exists {
		return ""
	}

	if rule.Required && strings.TrimSpace(value) == "" {
		return rule.Message
	}

	if rule.Pattern != nil && value != "" && !rule.Pattern.MatchString(value) {
		return rule.Message
	}

	return ""
}

// ValidateForm evaluates every entry that has a configured rule and
// returns the failing ones only.
func (e *Engine) ValidateForm(fields map[Field]string) Errors {
	errors := Errors{}

	for field, value := range fields {
		if _, exists := e.rules[field]; !exists {
			continue
		}
		if message := e.ValidateField(field, value); message != "" {
			errors[field] = message
		}
	}

	return errors
}

// CompileRules turns configured rule specs into a RuleSet, rejecting
// unknown field names and broken patterns.
func CompileRules(specs map[string]myconfig.ValidationRule) (RuleSet, error) {
	rules := RuleSet{}

	for name, spec := range specs {
		field, err := ParseField(name)
		if err != nil {
			return nil, err
		}

		rule := Rule{
			Required: spec.Required,
			Message:  spec.Message,
		}
		if spec.Pattern != "" {
			pattern, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, myerrors.NewInvalidInputErrorf("invalid pattern for field %s: %s", name, err)
			}
			rule.Pattern = pattern
		}

		rules[field] = rule
	}

	return rules, nil
}
