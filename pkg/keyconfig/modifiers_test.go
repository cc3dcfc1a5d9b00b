package keyconfig

import "testing"

func TestModifiersSatisfied(t *testing.T) {
	testCases := []struct {
		name string
		mods Modifiers
		keys string
		want bool
	}{
		{"no modifiers held passes anything", Modifiers{}, "", true},
		{"no modifiers held passes keys", Modifiers{}, "$mod+Return", true},
		{"meta marker present", Modifiers{Meta: true}, "$mod+Return", true},
		{"meta marker absent", Modifiers{Meta: true}, "ctrl+Return", false},
		{"control marker case-insensitive", Modifiers{Control: true}, "$mod+Ctrl+Left", true},
		{"alt marker present", Modifiers{Alt: true}, "$mod+$ALT+space", true},
		{"shift marker present", Modifiers{Shift: true}, "$mod+Shift+q", true},
		{"shift marker absent", Modifiers{Shift: true}, "$mod+q", false},
		{"all held all present", Modifiers{Shift: true, Control: true, Alt: true, Meta: true}, "$mod+ctrl+$alt+shift+x", true},
		{"all held one missing", Modifiers{Shift: true, Control: true, Alt: true, Meta: true}, "$mod+ctrl+shift+x", false},
		{"empty keys never satisfies a held modifier", Modifiers{Meta: true}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mods.Satisfied(tc.keys); got != tc.want {
				t.Errorf("Satisfied(%q) with %+v = %v, want %v", tc.keys, tc.mods, got, tc.want)
			}
		})
	}
}

func TestModifiersAny(t *testing.T) {
	if (Modifiers{}).Any() {
		t.Error("empty Modifiers must report Any() == false")
	}
	if !(Modifiers{Alt: true}).Any() {
		t.Error("Modifiers with a held flag must report Any() == true")
	}
}
