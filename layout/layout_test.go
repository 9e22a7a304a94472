package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomui/loom"
)

const counterLayout = `
root:
  kind: container
  class: flex flex-col items-center
  handlers:
    longPress: reset
  children:
    - kind: text
      text: "Count: 0"
      class: text-white
    - kind: button
      handlers:
        click: increment
      children:
        - kind: text
          text: "+1"
    - kind: bar
      value: 30
      min: 10
      max: 50
`

func testFuncs() Funcs {
	noop := loom.CallbackFunc(func() error { return nil })
	return Funcs{"increment": noop, "reset": noop}
}

func TestParseCounterLayout(t *testing.T) {
	root, err := Loader{Funcs: testFuncs()}.Parse([]byte(counterLayout))
	require.NoError(t, err)

	assert.Equal(t, loom.KindContainer, root.Kind)
	assert.Equal(t, "flex flex-col items-center", root.Class)
	require.Contains(t, root.Handlers, loom.EventLongPress)

	require.Len(t, root.Children, 3)
	label, button, bar := root.Children[0], root.Children[1], root.Children[2]

	assert.Equal(t, loom.KindText, label.Kind)
	assert.Equal(t, "Count: 0", label.Text)

	assert.Equal(t, loom.KindButton, button.Kind)
	require.Contains(t, button.Handlers, loom.EventClick)
	require.Len(t, button.Children, 1)

	assert.Equal(t, loom.KindBar, bar.Kind)
	require.NotNil(t, bar.Value)
	assert.Equal(t, 30, *bar.Value)
	require.NotNil(t, bar.Min)
	assert.Equal(t, 10, *bar.Min)
	require.NotNil(t, bar.Max)
	assert.Equal(t, 50, *bar.Max)
}

func TestParseKindAliases(t *testing.T) {
	root, err := Loader{}.Parse([]byte(`
root:
  kind: div
  children:
    - kind: label
      text: aliased
    - kind: btn
`))
	require.NoError(t, err)

	assert.Equal(t, loom.KindContainer, root.Kind)
	assert.Equal(t, loom.KindText, root.Children[0].Kind)
	assert.Equal(t, loom.KindButton, root.Children[1].Kind)
}

func TestParseKeepsUnknownKindForBuilder(t *testing.T) {
	root, err := Loader{}.Parse([]byte("root:\n  kind: carousel\n"))
	require.NoError(t, err)
	assert.Equal(t, loom.KindInvalid, root.Kind)
}

func TestParseRejectsMissingRoot(t *testing.T) {
	_, err := Loader{}.Parse([]byte("# nothing here\n"))
	assert.ErrorContains(t, err, "no root")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Loader{}.Parse([]byte("root: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse layout")
}

func TestParseRejectsUnknownEvent(t *testing.T) {
	_, err := Loader{Funcs: testFuncs()}.Parse([]byte(`
root:
  kind: button
  handlers:
    hover: increment
`))
	assert.ErrorContains(t, err, `unknown event "hover"`)
}

func TestParseRejectsUnboundHandler(t *testing.T) {
	doc := []byte(`
root:
  kind: button
  handlers:
    click: missing
`)
	_, err := Loader{Funcs: testFuncs()}.Parse(doc)
	assert.ErrorContains(t, err, `no callback registered for "missing"`)
}

func TestAllowUnboundBindsNoops(t *testing.T) {
	doc := []byte(`
root:
  kind: button
  handlers:
    click: missing
`)
	root, err := Loader{AllowUnbound: true}.Parse(doc)
	require.NoError(t, err)

	fn, ok := root.Handlers[loom.EventClick]
	require.True(t, ok)
	assert.NoError(t, fn.Invoke())
}

func TestSourceReloadsFilePerProduce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root:\n  kind: text\n  text: one\n"), 0o644))

	src := NewSource(path, nil)
	root, err := src.Produce()
	require.NoError(t, err)
	assert.Equal(t, "one", root.Text)

	require.NoError(t, os.WriteFile(path, []byte("root:\n  kind: text\n  text: two\n"), 0o644))
	root, err = src.Produce()
	require.NoError(t, err)
	assert.Equal(t, "two", root.Text)

	assert.NoError(t, src.Drain())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.ErrorContains(t, err, "failed to read layout")
}
