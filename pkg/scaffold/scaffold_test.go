package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

type fakeRunner struct {
	calls  []string
	failOn map[string]error
}

func (r *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, call)
	return r.failOn[call]
}

type recordingReporter struct {
	infos []string
	warns []string
}

func (r *recordingReporter) Info(msg string) { r.infos = append(r.infos, msg) }
func (r *recordingReporter) Warn(msg string) { r.warns = append(r.warns, msg) }

func newInstaller(t *testing.T) (*Installer, *fakeRunner, *recordingReporter) {
	t.Helper()
	runner := &fakeRunner{failOn: map[string]error{}}
	rep := &recordingReporter{}
	return &Installer{
		Dir:      t.TempDir(),
		Runner:   runner,
		Reporter: rep,
	}, runner, rep
}

func TestInstaller_FreshRepository(t *testing.T) {
	in, runner, rep := newInstaller(t)

	require.NoError(t, in.Run(context.Background()))

	assert.Equal(t, []string{"bd init", "bd config set no-git-ops true"}, runner.calls)
	assert.DirExists(t, filepath.Join(in.Dir, "devdocs", "archive"))
	assert.FileExists(t, filepath.Join(in.Dir, "devdocs", "README.md"))
	assert.FileExists(t, filepath.Join(in.Dir, ".pi", "hooks", "bd-prime.ts"))

	agents, err := os.ReadFile(filepath.Join(in.Dir, "AGENTS.md"))
	require.NoError(t, err)
	assert.Contains(t, string(agents), AgentsMarker)

	hook, err := os.ReadFile(filepath.Join(in.Dir, ".pi", "hooks", "devdocs-commands.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(hook), `pi.registerCommand("devdocs-archive"`)

	assert.Contains(t, rep.infos, "Initialized beads")
	assert.Contains(t, rep.infos, "Created AGENTS.md")
	assert.Empty(t, rep.warns)
}

func TestInstaller_IsIdempotent(t *testing.T) {
	in, runner, rep := newInstaller(t)
	require.NoError(t, os.Mkdir(filepath.Join(in.Dir, ".beads"), 0o755))

	require.NoError(t, in.Run(context.Background()))
	first, err := os.ReadFile(filepath.Join(in.Dir, "AGENTS.md"))
	require.NoError(t, err)

	require.NoError(t, in.Run(context.Background()))
	second, err := os.ReadFile(filepath.Join(in.Dir, "AGENTS.md"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.NotContains(t, runner.calls, "bd init")
	assert.Contains(t, rep.infos, "Beads already initialized")
	assert.Contains(t, rep.infos, "AGENTS.md already contains devdocs methodology")
	assert.Contains(t, rep.infos, ".pi/hooks/devdocs-commands.ts already exists")
}

func TestInstaller_RequiresRunnerAndReporter(t *testing.T) {
	dir := t.TempDir()

	err := (&Installer{Dir: dir, Reporter: &recordingReporter{}}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runner")

	err = (&Installer{Dir: dir, Runner: &fakeRunner{}}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reporter")

	assert.NoDirExists(t, filepath.Join(dir, "devdocs"))
}

func TestInstaller_BeadsInitFailureStops(t *testing.T) {
	in, runner, _ := newInstaller(t)
	runner.failOn["bd init"] = errors.New("bd: not found")

	err := in.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize beads")
	assert.NoDirExists(t, filepath.Join(in.Dir, "devdocs"))
}

func TestInstaller_GitOpsConfigFailureWarns(t *testing.T) {
	in, runner, rep := newInstaller(t)
	runner.failOn["bd config set no-git-ops true"] = errors.New("exit 1")

	require.NoError(t, in.Run(context.Background()))
	require.Len(t, rep.warns, 1)
	assert.Contains(t, rep.warns[0], "failed to set no-git-ops config")
}

func TestInstaller_SkipBeads(t *testing.T) {
	in, runner, rep := newInstaller(t)
	in.SkipBeads = true

	require.NoError(t, in.Run(context.Background()))
	assert.Empty(t, runner.calls)
	assert.Equal(t, []string{"Skipped beads setup"}, rep.warns)
}

func TestInstaller_ReplacesBeadsLandingAgents(t *testing.T) {
	in, _, rep := newInstaller(t)
	path := filepath.Join(in.Dir, "AGENTS.md")
	require.NoError(t, os.WriteFile(path, []byte("# Agents\n\n## Landing the Plane\npush everything\n"), 0o644))

	require.NoError(t, in.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Landing the Plane")
	assert.True(t, strings.HasPrefix(string(data), AgentsMarker))
	assert.Contains(t, rep.infos, "Replaced beads AGENTS.md with devdocs methodology (no-git-ops mode)")
}

func TestInstaller_AppendsToCustomAgents(t *testing.T) {
	in, _, _ := newInstaller(t)
	path := filepath.Join(in.Dir, "AGENTS.md")
	require.NoError(t, os.WriteFile(path, []byte("# House rules\n"), 0o644))

	require.NoError(t, in.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# House rules\n\n"+AgentsMarker))
}

func TestInstaller_KeepsExistingReadme(t *testing.T) {
	in, _, _ := newInstaller(t)
	require.NoError(t, os.MkdirAll(filepath.Join(in.Dir, "devdocs"), 0o755))
	readme := filepath.Join(in.Dir, "devdocs", "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("mine"), 0o644))

	require.NoError(t, in.Run(context.Background()))

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestGenerateHook_MatchesCatalog(t *testing.T) {
	cat, err := templates.ForVersion(templates.V1)
	require.NoError(t, err)

	hook, err := GenerateHook(cat, "")
	require.NoError(t, err)

	assert.Contains(t, hook, "instruction templates v1")
	assert.Equal(t, len(cat.Entries()), strings.Count(hook, "pi.registerCommand("))
	assert.Equal(t, len(cat.Entries()), strings.Count(hook, `customType: "devdocs"`))
	assert.Contains(t, hook, `ctx.ui.notify("Usage: /epic-create <description>", "warning");`)
	assert.Contains(t, hook, "content: `Create a new epic for: ${args}\nSet up devdocs/<name>/plan.md")
	assert.Contains(t, hook, "handler: async (_args, ctx) => {\n      pi.sendMessage(")
	assert.NotContains(t, hook, templates.ArgToken)
}

func TestTemplateLiteral_Escapes(t *testing.T) {
	got := templateLiteral("a `b` ${c} \\d " + templates.ArgToken)
	assert.Equal(t, "a \\`b\\` \\${c} \\\\d ${args}", got)
}
