package templates

// Template bodies shared by every set. Changing one changes all versions that use it.
const (
	analyzeBody = `Analyze this codebase and create initial reference documentation in devdocs/.
Focus on: architecture overview, key patterns, conventions, and gotchas.
Ask me before creating any files.`

	discoverBody = `Review recent git history and identify any in-progress work that should be
tracked as bd issues or epics. Create them after confirming with me.`

	epicCreateBody = `Create a new epic for: {{args}}
Set up devdocs/<name>/plan.md and create bd issues for the phases.
Ask me to confirm the name and structure before creating.`

	auditBody = `Audit devdocs/ for stale or outdated content. Check if reference docs
still match the current codebase and flag anything that needs updating.`

	syncBody = `Update devdocs/README.md to reflect the current state of reference docs,
active epics, and archived epics.`

	statusBody = `Summarize the current project state: open issues, active epics, blockers,
and what's ready to work on.`

	searchBody = `What decisions were made about "{{args}}"? Search the devdocs archive
and reference documentation.`
)

// v1 is the set shipped with the first hook script.
const (
	v1EpicArchiveBody = `Archive the "{{args}}" epic. Extract key learnings to devdocs/archive/,
delete the epic directory, and ask about promoting design.md.`

	v1EpicStatusBody = `Review the "{{args}}" epic and tell me if it's ready for archival.
List any open issues or incomplete work.`
)

func v1Catalog() *Catalog {
	return newCatalog(V1, []Entry{
		{Name: "devdocs-analyze", Description: "Analyze codebase and create initial reference documentation", Body: analyzeBody},
		{Name: "devdocs-discover", Description: "Review git history to discover in-progress work", Body: discoverBody},
		{Name: "epic-create", Description: "Create a new epic with plan.md and bd issues", Placeholder: "<description>", Body: epicCreateBody},
		{Name: "epic-archive", Description: "Archive a completed epic", Placeholder: "<epic-name>", Body: v1EpicArchiveBody},
		{Name: "epic-status", Description: "Review epic status and check if ready for archival", Placeholder: "<epic-name>", Body: v1EpicStatusBody},
		{Name: "devdocs-audit", Description: "Audit devdocs for stale or outdated content", Body: auditBody},
		{Name: "devdocs-sync", Description: "Update devdocs/README.md index to match actual files", Body: syncBody},
		{Name: "devdocs-status", Description: "Summarize current project state", Body: statusBody},
		{Name: "devdocs-search", Description: "Search devdocs for past decisions", Placeholder: "<topic>", Body: searchBody},
	})
}
