// Package builder defines shared constants used across the rule registry,
// the validator and the generation pipeline.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the public entry point for context.
//-----------------------------------------------------------------------------

const (
	MethodNew                = "New"
	MethodNewFieldMap        = "NewFieldMap"
	MethodRuleFor            = "RuleFor"
	MethodRuleForValue       = "RuleForValue"
	MethodRuleForIndex       = "RuleForIndex"
	MethodRule               = "Rule"
	MethodRuleForType        = "RuleForType"
	MethodRules              = "Rules"
	MethodIgnore             = "Ignore"
	MethodCustomInstantiator = "CustomInstantiator"
	MethodFinishWith         = "FinishWith"
	MethodRuleSet            = "RuleSet"
	MethodGenerate           = "Generate"
	MethodGenerateN          = "GenerateN"
	MethodPopulate           = "Populate"
	MethodAssertValid        = "AssertValid"
)

//-----------------------------------------------------------------------------
// Rule Sets
//-----------------------------------------------------------------------------

// DefaultRuleSet holds every rule declared outside RuleSet and is the only
// set applied when a generation call names none.
const DefaultRuleSet = "default"

// ruleSetSeparator splits a selection string such as "default,vip".
const ruleSetSeparator = ","

// bulkKeyPrefix keys Rules blocks. NewFieldMap rejects field names that
// start with '#', so the keys never collide.
const bulkKeyPrefix = "#rules-"
