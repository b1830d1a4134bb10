// Package entities contains core business entities.
package entities

// maxHighPriorityPerProject caps High-priority items within one project.
const maxHighPriorityPerProject = 5

// WorkItemValidator is the stateless domain service enforcing work item
// creation rules against an aggregate. Its count cap deliberately duplicates
// Project.AddWorkItem's own enforcement: external callers may reach either
// path directly, so both carry identical thresholds and message text.
type WorkItemValidator struct{}

// NewWorkItemValidator constructs the domain validation service.
func NewWorkItemValidator() *WorkItemValidator {
	return &WorkItemValidator{}
}

// ValidateWorkItemCreation checks aggregate-level creation rules. The count
// cap takes precedence over the high-priority cap when both would fire.
func (v *WorkItemValidator) ValidateWorkItemCreation(project *Project, priority WorkItemPriority) error {
	if len(project.WorkItems) >= maxWorkItemsPerProject {
		return NewDomainError("Project cannot have more than 20 work items")
	}

	if priority == PriorityHigh {
		high := 0
		for _, wi := range project.WorkItems {
			if wi.Priority == PriorityHigh {
				high++
			}
		}
		if high >= maxHighPriorityPerProject {
			return NewDomainError("Project cannot have more than 5 high priority work items")
		}
	}

	return nil
}
