package pathdata

import "testing"

func TestParsePathBasic(t *testing.T) {
	cmds, err := ParsePath("M0 0 L100 0 L100 50 L0 50 Z")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	if len(cmds) != 5 {
		t.Fatalf("got %d commands, want 5", len(cmds))
	}
	if _, ok := cmds[0].(Move); !ok {
		t.Errorf("first command = %T, want Move", cmds[0])
	}
	if _, ok := cmds[4].(Close); !ok {
		t.Errorf("last command = %T, want Close", cmds[4])
	}
}

func TestParsePathImplicitLine(t *testing.T) {
	cmds, err := ParsePath("M0 0 10 10 20 20")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	if _, ok := cmds[0].(Move); !ok {
		t.Errorf("command 0 = %T, want Move", cmds[0])
	}
	if _, ok := cmds[1].(Line); !ok {
		t.Errorf("command 1 = %T, want implicit Line", cmds[1])
	}
	if _, ok := cmds[2].(Line); !ok {
		t.Errorf("command 2 = %T, want implicit Line", cmds[2])
	}
}

func TestParsePathRelative(t *testing.T) {
	cmds, err := ParsePath("m0,0 l10,10")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	m := cmds[0].(Move)
	if !m.Relative {
		t.Errorf("m should be relative")
	}
	l := cmds[1].(Line)
	if !l.Relative {
		t.Errorf("l should be relative")
	}
}

func TestParsePathMinusNoSeparator(t *testing.T) {
	cmds, err := ParsePath("M0 0L10-5-10-5")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	l := cmds[1].(Line)
	if l.X.String() != "10" || l.Y.String() != "-5" {
		t.Errorf("line 1 = (%v,%v), want (10,-5)", l.X, l.Y)
	}
	l2 := cmds[2].(Line)
	if l2.X.String() != "-10" || l2.Y.String() != "-5" {
		t.Errorf("line 2 = (%v,%v), want (-10,-5)", l2.X, l2.Y)
	}
}

func TestParsePathArc(t *testing.T) {
	cmds, err := ParsePath("M0 0 A25 25 -30 0 1 50 -25")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	a := cmds[1].(Arc)
	if a.LargeArc != false || a.Sweep != true {
		t.Errorf("arc flags = (%v,%v), want (false,true)", a.LargeArc, a.Sweep)
	}
	if a.X.String() != "50" || a.Y.String() != "-25" {
		t.Errorf("arc endpoint = (%v,%v), want (50,-25)", a.X, a.Y)
	}
}

func TestParsePathErrors(t *testing.T) {
	bad := []string{"", "L10 10", "M0 0 X10 10", "M0 0 A25 25 0 2 1 50 -25"}
	for _, in := range bad {
		if _, err := ParsePath(in); err == nil {
			t.Errorf("ParsePath(%q): expected error, got none", in)
		}
	}
}
