package templates

// v2 moves archival under the devdocs- prefix and names the epic's files explicitly.
const (
	v2ArchiveBody = `Archive the "{{args}}" epic. Extract key learnings to devdocs/archive/{{args}}.md,
delete the devdocs/{{args}}/ directory, and ask about promoting design.md.`

	v2EpicStatusBody = `Review the "{{args}}" epic in devdocs/{{args}}/plan.md and tell me if it's ready for archival.
List any open issues or incomplete work.`
)

func v2Catalog() *Catalog {
	return newCatalog(V2, []Entry{
		{Name: "devdocs-analyze", Description: "Analyze codebase and create initial reference documentation", Body: analyzeBody},
		{Name: "devdocs-discover", Description: "Review git history to discover in-progress work", Body: discoverBody},
		{Name: "epic-create", Description: "Create a new epic with plan.md and bd issues", Placeholder: "<description>", Body: epicCreateBody},
		{Name: "epic-status", Description: "Review epic status and check if ready for archival", Placeholder: "<epic-name>", Body: v2EpicStatusBody},
		{Name: "devdocs-archive", Description: "Archive a completed epic into devdocs/archive", Placeholder: "<epic-name>", Body: v2ArchiveBody},
		{Name: "devdocs-audit", Description: "Audit devdocs for stale or outdated content", Body: auditBody},
		{Name: "devdocs-sync", Description: "Update devdocs/README.md index to match actual files", Body: syncBody},
		{Name: "devdocs-status", Description: "Summarize current project state", Body: statusBody},
		{Name: "devdocs-search", Description: "Search devdocs for past decisions", Placeholder: "<topic>", Body: searchBody},
	})
}
