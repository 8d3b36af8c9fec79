package i18n

import "testing"

func TestCatalogsHaveSameKeys(t *testing.T) {
	for locale := range catalogs {
		for key := range catalogs[DefaultLocale] {
			if _, ok := catalogs[locale][key]; !ok {
				t.Errorf("locale %s missing key %s", locale, key)
			}
		}
		for key := range plurals[DefaultLocale] {
			if _, ok := plurals[locale][key]; !ok {
				t.Errorf("locale %s missing plural key %s", locale, key)
			}
		}
	}
}

func TestTFormatsAndFallsBack(t *testing.T) {
	if got := T("es", QuizScore, 1, 2); got != "Respondiste 1 de 2 correctamente." {
		t.Errorf("unexpected es message: %q", got)
	}
	if got := T("fr", NextLesson); got != "Next lesson" {
		t.Errorf("unknown locale should fall back to en, got %q", got)
	}
	if got := T("en", Key("nope")); got != "nope" {
		t.Errorf("missing key should echo key, got %q", got)
	}
}

func TestTPlurals(t *testing.T) {
	tests := []struct {
		locale string
		key    Key
		args   []any
		want   string
	}{
		{"en", TasksIncomplete, []any{1}, "Finish the required task before marking this lesson complete."},
		{"en", TasksIncomplete, []any{2}, "Finish the 2 required tasks before marking this lesson complete."},
		{"es", TasksIncomplete, []any{1}, "Completa la tarea obligatoria antes de marcar esta lección como completada."},
		{"es", TasksIncomplete, []any{3}, "Completa las 3 tareas obligatorias antes de marcar esta lección como completada."},
		{"en", TasksProgress, []any{0, 1}, "0 of 1 required task done"},
		{"en", TasksProgress, []any{1, 2}, "1 of 2 required tasks done"},
		{"en", CourseSummary, []any{2, 5}, "2 of 5 lessons complete"},
		{"es", CourseSummary, []any{1, 1}, "1 de 1 lección completada"},
		{"en", LessonsCompleted, []any{1}, "1 lesson completed"},
		{"en", LessonsCompleted, []any{3}, "3 lessons completed"},
		{"es", LessonsCompleted, []any{0}, "0 lecciones completadas"},
		{"es", AnswerTrue, nil, "Verdadero"},
	}
	for _, tt := range tests {
		if got := T(tt.locale, tt.key, tt.args...); got != tt.want {
			t.Errorf("T(%s, %s, %v) = %q, want %q", tt.locale, tt.key, tt.args, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"", "", false},
		{"es", "es", true},
		{"es-MX,es;q=0.9", "es", true},
		{"fr-FR,es;q=0.8", "es", true},
		{"en;q=0.1, es;q=0.9", "es", true},
		{"es;q=0.2, en-US;q=0.8", "en", true},
		{"de", "", false},
	}
	for _, tt := range tests {
		got, ok := Match(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLocales(t *testing.T) {
	got := Locales()
	if len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Errorf("Locales() = %v", got)
	}
}
