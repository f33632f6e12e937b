package pack

import "testing"

func TestProbeIdentifier_ServerEntity(t *testing.T) {
	raw := []byte(`{"format_version":"1.16.0","minecraft:entity":{"description":{"identifier":"mod:zombie_king"}}}`)
	id, err := ProbeIdentifier(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "mod:zombie_king" {
		t.Errorf("id = %q, want %q", id, "mod:zombie_king")
	}
}

func TestProbeIdentifier_ClientEntity(t *testing.T) {
	raw := []byte(`{"minecraft:client_entity":{"description":{"identifier":"mod:ghost"}}}`)
	id, err := ProbeIdentifier(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "mod:ghost" {
		t.Errorf("id = %q, want %q", id, "mod:ghost")
	}
}

func TestProbeIdentifier_PrefersServerEntity(t *testing.T) {
	raw := []byte(`{
		"minecraft:client_entity": {"description": {"identifier": "mod:client_side"}},
		"minecraft:entity": {"description": {"identifier": "mod:server_side"}}
	}`)
	id, err := ProbeIdentifier(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "mod:server_side" {
		t.Errorf("id = %q, want %q", id, "mod:server_side")
	}
}

func TestProbeIdentifier_NullFallsThroughToNextVariant(t *testing.T) {
	// A JSON-null identifier in the first variant is "absent" and the next
	// variant is consulted.
	raw := []byte(`{
		"minecraft:entity": {"description": {"identifier": null}},
		"minecraft:client_entity": {"description": {"identifier": "mod:fallback"}}
	}`)
	id, err := ProbeIdentifier(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "mod:fallback" {
		t.Errorf("id = %q, want %q", id, "mod:fallback")
	}
}

func TestProbeIdentifier_TrimsWhitespace(t *testing.T) {
	raw := []byte(`{"minecraft:entity":{"description":{"identifier":"  mod:spaced  "}}}`)
	id, err := ProbeIdentifier(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "mod:spaced" {
		t.Errorf("id = %q, want %q", id, "mod:spaced")
	}
}

func TestProbeIdentifier_NoIdentifier(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no known variant", `{"format_version":"1.16.0"}`},
		{"missing description", `{"minecraft:entity":{}}`},
		{"missing identifier", `{"minecraft:entity":{"description":{}}}`},
		{"identifier not a string", `{"minecraft:entity":{"description":{"identifier":42}}}`},
		{"literal null string", `{"minecraft:entity":{"description":{"identifier":"null"}}}`},
		{"empty identifier", `{"minecraft:entity":{"description":{"identifier":""}}}`},
		{"whitespace identifier", `{"minecraft:entity":{"description":{"identifier":"   "}}}`},
		{"variant not an object", `{"minecraft:entity":[1,2,3]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := ProbeIdentifier([]byte(c.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != "" {
				t.Errorf("id = %q, want empty", id)
			}
		})
	}
}

func TestProbeIdentifier_MalformedJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"truncated", `{"minecraft:entity": {"description"`},
		{"empty file", ``},
		{"not json", `this is not json`},
		{"top-level array", `[{"minecraft:entity":{}}]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := ProbeIdentifier([]byte(c.raw))
			if err == nil {
				t.Fatal("expected an error for malformed input")
			}
			if id != "" {
				t.Errorf("id = %q, want empty", id)
			}
		})
	}
}
