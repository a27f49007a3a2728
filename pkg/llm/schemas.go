package llm

// Output schemas the kernel decodes structured LLM responses into.
// Field names match the JSON the prompts ask the model to produce.

// DiagnosticAnalysis is the diagnostic engine's analysis of a stuck workflow.
type DiagnosticAnalysis struct {
	RootCause       string           `json:"root_cause"`
	Hypotheses      []Hypothesis     `json:"hypotheses"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Hypothesis is one candidate explanation with the model's likelihood estimate.
type Hypothesis struct {
	Description string  `json:"description"`
	Likelihood  float64 `json:"likelihood"`
}

// Recommendation is one proposed recovery action. TaskType feeds the
// discovery branch when the engine spawns a recovery task from it.
type Recommendation struct {
	Action   string `json:"action"`
	TaskType string `json:"task_type"`
	Priority string `json:"priority"`
}

// ValidationResult is an LLM-assisted assessment of submitted work.
type ValidationResult struct {
	Passed            bool     `json:"passed"`
	Feedback          string   `json:"feedback"`
	BlockingReasons   []string `json:"blocking_reasons"`
	CompletenessScore float64  `json:"completeness_score"`
	MissingArtifacts  []string `json:"missing_artifacts"`
}

// MemoryClassification labels a task execution record with a memory type.
type MemoryClassification struct {
	MemoryType string  `json:"memory_type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// PatternExtraction lists the success and failure signals found in a
// batch of task memories.
type PatternExtraction struct {
	SuccessIndicators []string `json:"success_indicators"`
	FailureIndicators []string `json:"failure_indicators"`
}
