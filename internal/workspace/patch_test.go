package workspace

import (
	"strings"
	"testing"

	"IdeaEnv/internal/envmap"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<project version="4">
  <component name="RunManager">
    <configuration name="web" type="PythonConfigurationType" factoryName="Python">
      <option name="SCRIPT_NAME" value="manage.py" />
      <envs>
        <env name="OLD" value="1" />
        <env name="STALE" value="2" />
      </envs>
    </configuration>
    <configuration name="svc" type="GoApplicationRunConfiguration">
      <envs>
        <env name="KEEP" value="go" />
      </envs>
    </configuration>
    <configuration name="bare" />
  </component>
</project>
`

// envsOf returns the name/value pairs under the named configuration.
func envsOf(t *testing.T, xml, confName string) []string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))

	conf := doc.FindElement("//configuration[@name='" + confName + "']")
	require.NotNil(t, conf, "configuration %q not found", confName)
	envs := conf.SelectElement("envs")
	if envs == nil {
		return nil
	}
	var out []string
	for _, e := range envs.SelectElements("env") {
		out = append(out, e.SelectAttrValue("name", "")+"="+e.SelectAttrValue("value", ""))
	}
	return out
}

func patchFixture(t *testing.T, env *envmap.Map, skip TypeSet) (Result, string) {
	t.Helper()
	tree, err := ParseTree([]byte(fixture))
	require.NoError(t, err)
	res := Patch(tree, env, skip)
	out, err := tree.Serialize()
	require.NoError(t, err)
	return res, out
}

func TestPatch(t *testing.T) {
	env := envmap.FromPairs("A", "1", "DJANGO_SETTINGS_MODULE", "shop.settings")
	res, out := patchFixture(t, env, DefaultSkipTypes())

	assert.Equal(t, []string{"A=1", "DJANGO_SETTINGS_MODULE=shop.settings"}, envsOf(t, out, "web"))
	assert.Equal(t, []string{"KEEP=go"}, envsOf(t, out, "svc"))
	assert.Equal(t, []string{"A=1", "DJANGO_SETTINGS_MODULE=shop.settings"}, envsOf(t, out, "bare"), "untyped configurations are patched")

	assert.Len(t, res.Patched, 2)
	assert.Equal(t, []string{"GoApplicationRunConfiguration"}, res.Skipped)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<option name="SCRIPT_NAME" value="manage.py"/>`)
}

func TestPatchIsIdempotent(t *testing.T) {
	env := envmap.FromPairs("A", "1", "B", "2")

	tree, err := ParseTree([]byte(fixture))
	require.NoError(t, err)
	Patch(tree, env, DefaultSkipTypes())
	once, err := tree.Serialize()
	require.NoError(t, err)

	Patch(tree, env, DefaultSkipTypes())
	twice, err := tree.Serialize()
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestPatchEmptySkipSet(t *testing.T) {
	res, out := patchFixture(t, envmap.FromPairs("A", "1"), NewTypeSet())

	assert.Len(t, res.Patched, 3)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, []string{"A=1"}, envsOf(t, out, "svc"))
}

func TestPatchEmptyMapping(t *testing.T) {
	_, out := patchFixture(t, envmap.New(), DefaultSkipTypes())

	assert.Empty(t, envsOf(t, out, "web"))
	assert.Contains(t, out, "<envs/>")
}

func TestPatchEscapesValues(t *testing.T) {
	value := `a<b & "c"`
	_, out := patchFixture(t, envmap.FromPairs("Q", value), DefaultSkipTypes())

	assert.Equal(t, []string{"Q=" + value}, envsOf(t, out, "web"))
}

func TestPatchKeepsLineBreaksInOtherAttributes(t *testing.T) {
	input := `<project><configuration name="web" type="X"><option name="PARAMETERS" value="a&#10;b&#9;c"/></configuration></project>`
	tree, err := ParseTree([]byte(input))
	require.NoError(t, err)

	Patch(tree, envmap.FromPairs("A", "1"), DefaultSkipTypes())
	out, err := tree.Serialize()
	require.NoError(t, err)
	assert.NotContains(t, out, "a\nb")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	opt := doc.FindElement("//option[@name='PARAMETERS']")
	require.NotNil(t, opt)
	assert.Equal(t, "a\nb\tc", opt.SelectAttrValue("value", ""))
}

func TestPatchEnvAttributeOrder(t *testing.T) {
	_, out := patchFixture(t, envmap.FromPairs("A", "1"), DefaultSkipTypes())
	assert.Contains(t, out, `<env name="A" value="1"/>`)
}

func TestParseTreeErrors(t *testing.T) {
	_, err := ParseTree([]byte("<project version=>"))
	assert.Error(t, err)

	_, err = ParseTree([]byte(`<?xml version="1.0"?>`))
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestNodeString(t *testing.T) {
	tree, err := ParseTree([]byte(`<a><configuration type="X"><envs/></configuration></a>`))
	require.NoError(t, err)

	nodes := tree.FindAll("configuration")
	require.Len(t, nodes, 1)
	assert.Equal(t, `<configuration type="X"><envs/></configuration>`, nodes[0].String())
}
