package upload

import (
	"os"
	"strings"
	"testing"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"my_mobs.mcaddon", true},
		{"MY_MOBS.MCADDON", true},
		{"pack.zip", false},
		{"pack.mcaddon.zip", false},
		{"noextension", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Allowed(c.name); got != c.want {
			t.Errorf("Allowed(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my_mobs.mcaddon", "my_mobs.mcaddon"},
		{"my addon.mcaddon", "my_addon.mcaddon"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\evil.mcaddon`, "evil.mcaddon"},
		{"café pack.mcaddon", "caf_pack.mcaddon"},
		{"..hidden.mcaddon", "hidden.mcaddon"},
		{"$(rm -rf).mcaddon", "rm_-rf.mcaddon"},
		{"...", ""},
		{"///", ""},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path, sum, err := Save(dir, "pack.mcaddon", strings.NewReader("hello"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("staged content = %q, want %q", data, "hello")
	}
	// sha256("hello")
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if sum != want {
		t.Errorf("sum = %q, want %q", sum, want)
	}
}

func TestSave_CreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/uploads"
	if _, _, err := Save(dir, "pack.mcaddon", strings.NewReader("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
