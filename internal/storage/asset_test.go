package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"gopkg.in/yaml.v3"
)

// testSpec is a simple ValidatingSpec for testing
type testSpec struct {
	valid bool
}

func (s *testSpec) Validate() error {
	if !s.valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset   Asset[*testSpec]
		expErrs []string
	}{
		"valid asset": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id",
				Spec:       &testSpec{valid: true},
			},
		},
		"version not set": {
			asset: Asset[*testSpec]{
				Identifier: "test-id",
				Spec:       &testSpec{valid: true},
			},
			expErrs: []string{"version must be set"},
		},
		"empty identifier": {
			asset: Asset[*testSpec]{
				Version: 1,
				Spec:    &testSpec{valid: true},
			},
			expErrs: []string{"id must be set"},
		},
		"identifier with underscore": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "iron_sword",
				Spec:       &testSpec{valid: true},
			},
			expErrs: []string{"id must be alphanumeric"},
		},
		"identifier with hyphen is valid": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "portal-room",
				Spec:       &testSpec{valid: true},
			},
		},
		"missing spec": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id",
			},
			expErrs: []string{"spec must be set"},
		},
		"invalid spec": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id",
				Spec:       &testSpec{valid: false},
			},
			expErrs: []string{"spec is invalid"},
		},
		"multiple errors": {
			asset: Asset[*testSpec]{
				Spec: &testSpec{valid: false},
			},
			expErrs: []string{
				"version must be set",
				"id must be set",
				"spec is invalid",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Errorf("expected errors %v, got nil", tt.expErrs)
				return
			}

			errStr := err.Error()
			for _, e := range tt.expErrs {
				if !strings.Contains(errStr, e) {
					t.Errorf("error %q does not contain %q", errStr, e)
				}
			}
		})
	}
}

type refHolder struct {
	Ref SmartIdentifier[*mockStoreSpec] `json:"ref" yaml:"ref"`
}

func TestSmartIdentifier_Unmarshal(t *testing.T) {
	tests := map[string]struct {
		decode func(*refHolder) error
	}{
		"json": {
			decode: func(h *refHolder) error {
				return json.Unmarshal([]byte(`{"ref":"iron-sword"}`), h)
			},
		},
		"yaml": {
			decode: func(h *refHolder) error {
				return yaml.Unmarshal([]byte("ref: iron-sword\n"), h)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var h refHolder
			if err := tt.decode(&h); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "id", h.Ref.Id(), "iron-sword")
			if h.Ref.Get() != nil {
				t.Errorf("expected unresolved reference, got %v", h.Ref.Get())
			}
		})
	}
}

func TestSmartIdentifier_Resolve(t *testing.T) {
	sword := &mockStoreSpec{Name: "iron_sword", Value: 5}
	store := NewMemoryStore(map[string]*mockStoreSpec{"iron-sword": sword})

	tests := map[string]struct {
		key    string
		expErr string
	}{
		"found": {
			key: "iron-sword",
		},
		"missing": {
			key:    "diamond-sword",
			expErr: `mockStoreSpec "diamond-sword" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ref := NewSmartIdentifier[*mockStoreSpec](tt.key)
			err := ref.Resolve(store)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref.Get() != sword {
				t.Errorf("resolved to %v, expected %v", ref.Get(), sword)
			}
		})
	}
}

func TestSmartIdentifier_Validate(t *testing.T) {
	err := NewSmartIdentifier[*mockStoreSpec]("").Validate()
	testutil.AssertErrorContains(t, err, "mockStoreSpec identifier is required")

	err = NewSmartIdentifier[*mockStoreSpec]("plains").Validate()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
