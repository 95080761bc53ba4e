package internal

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"matchlint/internal/nolint"
	"matchlint/internal/parser"
	"matchlint/internal/trie"
	tt "matchlint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths *trie.PathTrie
	rules        map[string]LintRule
}

// ruleConstructor builds a rule with its default severity.
type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

// allRuleConstructors maps rule names to their constructors.
var allRuleConstructors = ruleMap{
	"match-pattern-test": NewMatchPatternTestRule,
	"useless-guard":      NewUselessGuardRule,
	"unreachable-arm":    NewUnreachableArmRule,
}

// NewEngine creates a new lint engine with the given per-rule
// configuration applied over the defaults.
func NewEngine(rules map[string]tt.ConfigRule) *Engine {
	engine := &Engine{}
	engine.applyRules(rules)
	return engine
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerDefaultRules()

	for key, cfg := range rules {
		rule, ok := e.rules[key]
		if !ok {
			// unknown rule name, skip it
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
			continue
		}
		rule.SetSeverity(cfg.Severity)
	}
}

func (e *Engine) registerDefaultRules() {
	for key, construct := range allRuleConstructors {
		e.rules[key] = construct()
	}
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.runParsed(filename, source)
}

// RunSource applies all lint rules to the given source and returns a slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runParsed("", source)
}

func (e *Engine) runParsed(filename string, source []byte) ([]tt.Issue, error) {
	file, err := parser.ParseFile(filename, source)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	nolintMgr := nolint.ParseComments(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			issues, err := r.Check(filename, file)
			if err != nil {
				return
			}

			kept := filterNolintIssues(nolintMgr, issues)

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	return allIssues, nil
}

// IgnoreRule disables one rule for this engine.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath excludes the given file, or every file under the given
// directory, from linting.
func (e *Engine) IgnorePath(path string) {
	if e.ignoredPaths == nil {
		e.ignoredPaths = trie.New()
	}
	e.ignoredPaths.Insert(path)
}

// IsPathIgnored reports whether the path sits under an ignored path.
func (e *Engine) IsPathIgnored(path string) bool {
	return e.ignoredPaths.Covers(path)
}

// filterNolintIssues drops issues muted by nolint comments.
func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a
// SourceCode struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}
