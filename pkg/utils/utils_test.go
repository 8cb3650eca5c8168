package utils

import (
	"testing"
)

func Test_WhatLang(t *testing.T) {
	res := WhatLang("This week I spent most evenings working on the garden and it felt great.")
	if res != "English" {
		t.Fatal("unexpected language:", res)
	}

	t.Log(WhatLang("今天过得很充实，晚上和朋友一起吃了饭。"))
}

func Test_IsEnglish(t *testing.T) {
	if !IsEnglish("I keep thinking about how grateful I am for my family.") {
		t.Fatal("expected english content")
	}
	if IsEnglish("今天我和家人一起度过了非常愉快的一天，大家都很开心。") {
		t.Fatal("expected non-english content")
	}
}

func Test_TruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatal("unexpected result:", got)
	}

	got := TruncateRunes("a somewhat longer sentence", 10)
	if got != "a somewhat…" && len([]rune(got)) > 11 {
		t.Fatal("unexpected result:", got)
	}
}
