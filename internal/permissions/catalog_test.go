package permissions

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testCatalog = `
- name: storage
  label: Storage
  channel: stable
  extension_types: [extension, platform_app]
- name: tabs
  label: Tabs
  channel: stable
  extension_types: [extension]
- name: fileSystem
  channel: stable
  extension_types: [platform_app]
- name: sidePanel
  label: Side panel
  channel: dev
  extension_types: [extension]
`

func TestDefault_StableExtensionCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	stable, err := c.Query(ChannelStable, TypeExtension)
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	for _, want := range []string{"tabs", "storage", "activeTab", "contextMenus"} {
		if !stable.Contains(want) {
			t.Errorf("stable extension catalog missing %q", want)
		}
	}
	for _, unwanted := range []string{"fileSystem", "sidePanel", "declarativeNetRequest"} {
		if stable.Contains(unwanted) {
			t.Errorf("stable extension catalog should not contain %q", unwanted)
		}
	}

	names := stable.Names()
	storage, tabs := indexOf(names, "storage"), indexOf(names, "tabs")
	if storage > tabs {
		t.Errorf("storage (%d) should be declared before tabs (%d)", storage, tabs)
	}
}

func TestQuery_ChannelWidening(t *testing.T) {
	c, err := Load([]byte(testCatalog))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		channel string
		extType string
		want    []string
	}{
		{ChannelStable, TypeExtension, []string{"storage", "tabs"}},
		{ChannelDev, TypeExtension, []string{"storage", "tabs", "sidePanel"}},
		{ChannelStable, TypePlatformApp, []string{"storage", "fileSystem"}},
		{ChannelDev, "", []string{"storage", "tabs", "fileSystem", "sidePanel"}},
	}

	for _, tt := range tests {
		t.Run(tt.channel+"/"+tt.extType, func(t *testing.T) {
			got, err := c.Query(tt.channel, tt.extType)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Names()); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_UnknownChannel(t *testing.T) {
	c, _ := Load([]byte(testCatalog))
	if _, err := c.Query("canary", TypeExtension); err == nil {
		t.Fatal("expected error for unknown channel")
	}
}

func TestLabel(t *testing.T) {
	c, _ := Load([]byte(testCatalog))
	if got := c.Label("tabs"); got != "Tabs" {
		t.Errorf("Label(tabs) = %q, want %q", got, "Tabs")
	}
	if got := c.Label("fileSystem"); got != "fileSystem" {
		t.Errorf("Label(fileSystem) = %q, want name fallback", got)
	}
	if got := c.Label("nope"); got != "nope" {
		t.Errorf("Label(nope) = %q, want name fallback", got)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"duplicate", "- name: tabs\n- name: tabs\n", "declared twice"},
		{"missing name", "- label: x\n", "has no name"},
		{"bad channel", "- name: tabs\n  channel: canary\n", "unknown channel"},
		{"not yaml", "{{{", "parsing permission catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
