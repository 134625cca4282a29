// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	homedir.Reset()
	t.Cleanup(homedir.Reset)

	buf := bytes.NewBuffer(nil)
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPaletteCmd(t *testing.T) {
	out, err := execute(t, "palette")
	require.NoError(t, err)

	entries := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Contains(t, entries, "create.start-event")
	assert.Contains(t, entries, "create.call-activity")
	assert.NotContains(t, entries, "hand-tool")
	assert.NotContains(t, entries, "create.data-store")
	assert.True(t, strings.HasPrefix(out, "{\n  \"create.start-event\": {\n    \""), out)

	out, err = execute(t, "palette", "--mode", "deny", "-o", "yaml")
	require.NoError(t, err)

	entries = map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	assert.Contains(t, entries, "hand-tool")
	assert.Contains(t, entries, "create.script-task")
	assert.NotContains(t, entries, "create.task")
}

func TestPaletteCmd_Invalid(t *testing.T) {
	_, err := execute(t, "palette", "--mode", "strict")
	assert.Error(t, err)

	_, err = execute(t, "palette", "-o", "toml")
	assert.Error(t, err)

	_, err = execute(t, "palette", "--log-level", "loud")
	assert.Error(t, err)
}

func TestPropertiesCmd(t *testing.T) {
	out, err := execute(t, "properties", "--type", "bpmn:UserTask", "--id", "Activity_review", "--name", "Review")
	require.NoError(t, err)

	tabs := []*tabView{}
	require.NoError(t, json.Unmarshal([]byte(out), &tabs))
	require.Len(t, tabs, 1)
	require.Len(t, tabs[0].Groups, 1)

	entries := tabs[0].Groups[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "name", entries[0].ID)
	assert.Equal(t, "Review", entries[0].Value)
	assert.False(t, entries[0].ReadOnly)
	assert.Equal(t, "id", entries[1].ID)
	assert.Equal(t, "Activity_review", entries[1].Value)
	assert.True(t, entries[1].ReadOnly)

	_, err = execute(t, "properties", "--type", "bpmn:Unknown")
	assert.Error(t, err)
}

func TestCreateCmd(t *testing.T) {
	out, err := execute(t, "create", "create.event-subprocess", "--x", "400", "--y", "300", "--name", "On timeout")
	require.NoError(t, err)

	assert.Contains(t, out, `triggeredByEvent="true"`)
	assert.Contains(t, out, `name="On timeout"`)
	assert.Contains(t, out, `isExpanded="true"`)
	assert.Contains(t, out, `<dc:Bounds x="225" y="200" width="350" height="200"/>`)

	_, err = execute(t, "create", "create.data-store")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modeler.yml")
	data := []byte("palette:\n  mode: deny\n  deny:\n    - create.group\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := execute(t, "palette", "--config", path)
	require.NoError(t, err)

	entries := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Contains(t, entries, "create.task")
	assert.NotContains(t, entries, "create.group")
}
