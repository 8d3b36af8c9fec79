// Package i18n holds the learner-facing message catalogs.
package i18n

import (
	"maps"
	"slices"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message.
type Key string

const (
	LessonNotFound  Key = "lesson.not_found"
	PathNotFound    Key = "path.not_found"
	BackToCourses   Key = "nav.back_to_courses"
	TasksIncomplete Key = "lesson.tasks_incomplete"
	LessonCompleted Key = "lesson.completed"
	LessonReopened  Key = "lesson.reopened"
	SaveFailed      Key = "progress.save_failed"
	PremiumRequired Key = "access.premium_required"
	NextLesson      Key = "nav.next_lesson"
	PreviousLesson  Key = "nav.previous_lesson"
	CompleteCourse  Key = "nav.complete_course"
	ChatUnavailable Key = "chat.unavailable"
	ChatThinking    Key = "chat.thinking"
	MilestoneEarned Key = "milestone.earned"
	Loading         Key = "common.loading"
	QuizScore       Key = "quiz.score"
	QuizUnanswered  Key = "quiz.unanswered"
	Unauthorized    Key = "auth.unauthorized"
	Unexpected      Key = "common.unexpected"
	InvalidRequest  Key = "common.invalid_request"
	TaskNotFound    Key = "lesson.task_not_found"
	NoQuiz          Key = "quiz.none"
	PageIntro       Key = "page.intro"
	PageContent     Key = "page.content"
	PageTakeaways   Key = "page.takeaways"
	PageActions     Key = "page.actions"
	PageQuiz        Key = "page.quiz"

	MenuContinue         Key = "home.continue"
	MenuMilestones       Key = "home.milestones"
	MenuChat             Key = "home.chat"
	MenuSettings         Key = "home.settings"
	MenuExit             Key = "home.exit"
	MarkComplete         Key = "lesson.mark_complete"
	MarkIncomplete       Key = "lesson.mark_incomplete"
	LessonDone           Key = "lesson.done"
	TasksProgress        Key = "lesson.tasks_progress"
	NotFoundHint         Key = "lesson.not_found_hint"
	LoadFailed           Key = "content.load_failed"
	Minutes              Key = "lesson.minutes"
	Resources            Key = "lesson.resources"
	Video                Key = "lesson.video"
	QuizSubmit           Key = "quiz.submit"
	QuizRetry            Key = "quiz.retry"
	CourseCompleted      Key = "course.completed"
	CourseSummary        Key = "course.summary"
	LessonsCompleted     Key = "home.lessons_completed"
	NoMilestones         Key = "milestone.none"
	ChatPlaceholder      Key = "chat.placeholder"
	ChatNewThread        Key = "chat.new_thread"
	ChatDisabled         Key = "chat.disabled"
	ChatFollowUps        Key = "chat.follow_ups"
	SettingHighContrast  Key = "settings.high_contrast"
	SettingReducedMotion Key = "settings.reduced_motion"
	SettingLanguage      Key = "settings.language"
	SettingNewChat       Key = "settings.new_chat"
	SettingSaved         Key = "settings.saved"
	On                   Key = "common.on"
	Off                  Key = "common.off"
	Locked               Key = "access.locked"

	AnswerTrue    Key = "quiz.true"
	AnswerFalse   Key = "quiz.false"
	HintBack      Key = "hint.back"
	HintQuit      Key = "hint.quit"
	HintNavigate  Key = "hint.navigate"
	HintSelect    Key = "hint.select"
	HintScroll    Key = "hint.scroll"
	HintOpen      Key = "hint.open"
	HintModule    Key = "hint.module"
	HintChange    Key = "hint.change"
	HintHome      Key = "hint.home"
	HintAsk       Key = "hint.ask"
	HintNewChat   Key = "hint.new_chat"
	HintPage      Key = "hint.page"
	HintCheckTask Key = "hint.check_task"
	HintChoose    Key = "hint.choose"
	HintQuestion  Key = "hint.question"
	HintSubmit    Key = "hint.submit"
	HintComplete  Key = "hint.complete"
	HintRetry     Key = "hint.retry"
)

var catalogs = map[string]map[Key]string{
	"en": {
		LessonNotFound:  "We couldn't find that lesson.",
		PathNotFound:    "We couldn't find that learning path.",
		BackToCourses:   "Back to courses",
		LessonCompleted: "Lesson complete. Nice work!",
		LessonReopened:  "Lesson marked as not complete.",
		SaveFailed:      "We couldn't save that change. Please try again.",
		PremiumRequired: "This lesson is part of MoneyPath Premium.",
		NextLesson:      "Next lesson",
		PreviousLesson:  "Previous lesson",
		CompleteCourse:  "Complete course",
		ChatUnavailable: "Sorry, the assistant is unavailable right now. Please try again in a few minutes.",
		ChatThinking:    "Thinking...",
		MilestoneEarned: "Milestone earned: %s",
		Loading:         "Loading...",
		QuizScore:       "You answered %d of %d correctly.",
		QuizUnanswered:  "Answer every question before submitting.",
		Unauthorized:    "Please sign in to continue.",
		Unexpected:      "Something went wrong. Please try again.",
		InvalidRequest:  "That request wasn't understood.",
		TaskNotFound:    "This lesson has no such task.",
		NoQuiz:          "This lesson has no quiz.",
		PageIntro:       "Intro",
		PageContent:     "Lesson",
		PageTakeaways:   "Key takeaways",
		PageActions:     "Action steps",
		PageQuiz:        "Quiz",

		MenuContinue:         "Continue learning",
		MenuMilestones:       "Milestones",
		MenuChat:             "Ask the assistant",
		MenuSettings:         "Settings",
		MenuExit:             "Exit",
		MarkComplete:         "Mark complete",
		MarkIncomplete:       "Mark not complete",
		LessonDone:           "Completed",
		NotFoundHint:         "Press esc to go back to your courses.",
		LoadFailed:           "We couldn't load this lesson. Press r to try again.",
		Minutes:              "%d min",
		Resources:            "Resources",
		Video:                "Watch",
		QuizSubmit:           "Press s to submit your answers.",
		QuizRetry:            "Press r to try again.",
		CourseCompleted:      "You finished %s!",
		NoMilestones:         "Complete a lesson to earn your first milestone.",
		ChatPlaceholder:      "Ask a money question",
		ChatNewThread:        "Started a new conversation.",
		ChatDisabled:         "The assistant isn't set up. Configure an LLM provider key to use it.",
		ChatFollowUps:        "You could also ask:",
		SettingHighContrast:  "High contrast",
		SettingReducedMotion: "Reduced motion",
		SettingLanguage:      "Language",
		SettingNewChat:       "Start a new chat thread",
		SettingSaved:         "Saved.",
		On:                   "On",
		Off:                  "Off",
		Locked:               "Premium",

		AnswerTrue:    "True",
		AnswerFalse:   "False",
		HintBack:      "Back",
		HintQuit:      "Quit",
		HintNavigate:  "Navigate",
		HintSelect:    "Select",
		HintScroll:    "Scroll",
		HintOpen:      "Open",
		HintModule:    "Module",
		HintChange:    "Change",
		HintHome:      "Home",
		HintAsk:       "Ask",
		HintNewChat:   "New chat",
		HintPage:      "Page",
		HintCheckTask: "Check task",
		HintChoose:    "Choose",
		HintQuestion:  "Question",
		HintSubmit:    "Submit",
		HintComplete:  "Complete",
		HintRetry:     "Retry",
	},
	"es": {
		LessonNotFound:  "No encontramos esa lección.",
		PathNotFound:    "No encontramos esa ruta de aprendizaje.",
		BackToCourses:   "Volver a los cursos",
		LessonCompleted: "Lección completada. ¡Buen trabajo!",
		LessonReopened:  "Lección marcada como no completada.",
		SaveFailed:      "No pudimos guardar ese cambio. Inténtalo de nuevo.",
		PremiumRequired: "Esta lección es parte de MoneyPath Premium.",
		NextLesson:      "Siguiente lección",
		PreviousLesson:  "Lección anterior",
		CompleteCourse:  "Completar el curso",
		ChatUnavailable: "Lo sentimos, el asistente no está disponible en este momento. Inténtalo de nuevo en unos minutos.",
		ChatThinking:    "Pensando...",
		MilestoneEarned: "Logro obtenido: %s",
		Loading:         "Cargando...",
		QuizScore:       "Respondiste %d de %d correctamente.",
		QuizUnanswered:  "Responde todas las preguntas antes de enviar.",
		Unauthorized:    "Inicia sesión para continuar.",
		Unexpected:      "Algo salió mal. Inténtalo de nuevo.",
		InvalidRequest:  "No entendimos esa solicitud.",
		TaskNotFound:    "Esta lección no tiene esa tarea.",
		NoQuiz:          "Esta lección no tiene cuestionario.",
		PageIntro:       "Introducción",
		PageContent:     "Lección",
		PageTakeaways:   "Puntos clave",
		PageActions:     "Pasos a seguir",
		PageQuiz:        "Cuestionario",

		MenuContinue:         "Seguir aprendiendo",
		MenuMilestones:       "Logros",
		MenuChat:             "Preguntar al asistente",
		MenuSettings:         "Ajustes",
		MenuExit:             "Salir",
		MarkComplete:         "Marcar como completada",
		MarkIncomplete:       "Marcar como no completada",
		LessonDone:           "Completada",
		NotFoundHint:         "Pulsa esc para volver a tus cursos.",
		LoadFailed:           "No pudimos cargar esta lección. Pulsa r para intentarlo de nuevo.",
		Minutes:              "%d min",
		Resources:            "Recursos",
		Video:                "Ver",
		QuizSubmit:           "Pulsa s para enviar tus respuestas.",
		QuizRetry:            "Pulsa r para intentarlo de nuevo.",
		CourseCompleted:      "¡Terminaste %s!",
		NoMilestones:         "Completa una lección para obtener tu primer logro.",
		ChatPlaceholder:      "Haz una pregunta sobre dinero",
		ChatNewThread:        "Empezaste una conversación nueva.",
		ChatDisabled:         "El asistente no está configurado. Configura una clave de proveedor LLM para usarlo.",
		ChatFollowUps:        "También podrías preguntar:",
		SettingHighContrast:  "Alto contraste",
		SettingReducedMotion: "Movimiento reducido",
		SettingLanguage:      "Idioma",
		SettingNewChat:       "Empezar un chat nuevo",
		SettingSaved:         "Guardado.",
		On:                   "Sí",
		Off:                  "No",
		Locked:               "Premium",

		AnswerTrue:    "Verdadero",
		AnswerFalse:   "Falso",
		HintBack:      "Volver",
		HintQuit:      "Salir",
		HintNavigate:  "Moverse",
		HintSelect:    "Elegir",
		HintScroll:    "Desplazar",
		HintOpen:      "Abrir",
		HintModule:    "Módulo",
		HintChange:    "Cambiar",
		HintHome:      "Inicio",
		HintAsk:       "Preguntar",
		HintNewChat:   "Chat nuevo",
		HintPage:      "Página",
		HintCheckTask: "Marcar tarea",
		HintChoose:    "Elegir",
		HintQuestion:  "Pregunta",
		HintSubmit:    "Enviar",
		HintComplete:  "Completar",
		HintRetry:     "Reintentar",
	},
}

// plurals hold messages whose wording depends on a count.
var plurals = map[string]map[Key]catalog.Message{
	"en": {
		TasksIncomplete: plural.Selectf(1, "%d",
			plural.One, "Finish the required task before marking this lesson complete.",
			plural.Other, "Finish the %d required tasks before marking this lesson complete."),
		TasksProgress: plural.Selectf(2, "%d",
			plural.One, "%[1]d of %[2]d required task done",
			plural.Other, "%[1]d of %[2]d required tasks done"),
		CourseSummary: plural.Selectf(2, "%d",
			plural.One, "%[1]d of %[2]d lesson complete",
			plural.Other, "%[1]d of %[2]d lessons complete"),
		LessonsCompleted: plural.Selectf(1, "%d",
			plural.One, "%d lesson completed",
			plural.Other, "%d lessons completed"),
	},
	"es": {
		TasksIncomplete: plural.Selectf(1, "%d",
			plural.One, "Completa la tarea obligatoria antes de marcar esta lección como completada.",
			plural.Other, "Completa las %d tareas obligatorias antes de marcar esta lección como completada."),
		TasksProgress: plural.Selectf(2, "%d",
			plural.One, "%[1]d de %[2]d tarea obligatoria hecha",
			plural.Other, "%[1]d de %[2]d tareas obligatorias hechas"),
		CourseSummary: plural.Selectf(2, "%d",
			plural.One, "%[1]d de %[2]d lección completada",
			plural.Other, "%[1]d de %[2]d lecciones completadas"),
		LessonsCompleted: plural.Selectf(1, "%d",
			plural.One, "%d lección completada",
			plural.Other, "%d lecciones completadas"),
	},
}

// DefaultLocale is used for unknown locales and missing keys.
const DefaultLocale = "en"

var (
	locales  []string
	matcher  language.Matcher
	printers = make(map[string]*message.Printer)
)

func init() {
	// The default locale goes first so the matcher falls back to it.
	locales = []string{DefaultLocale}
	for _, loc := range Locales() {
		if loc != DefaultLocale {
			locales = append(locales, loc)
		}
	}

	b := catalog.NewBuilder(catalog.Fallback(language.Make(DefaultLocale)))
	tags := make([]language.Tag, len(locales))
	for i, loc := range locales {
		tag := language.MustParse(loc)
		tags[i] = tag
		for key, msg := range catalogs[loc] {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
		for key, msg := range plurals[loc] {
			if err := b.Set(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
	}
	matcher = language.NewMatcher(tags)
	for i, loc := range locales {
		printers[loc] = message.NewPrinter(tags[i], message.Catalog(b))
	}
}

// Supported reports whether a catalog exists for locale.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// Locales returns the supported locales, sorted.
func Locales() []string {
	return slices.Sorted(maps.Keys(catalogs))
}

// Match returns the supported locale that best serves an Accept-Language
// header, honoring quality weights. ok is false when nothing matched.
func Match(acceptLanguage string) (locale string, ok bool) {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, i, conf := matcher.Match(prefs...)
	if conf == language.No {
		return "", false
	}
	return locales[i], true
}

func has(locale string, key Key) bool {
	if _, ok := catalogs[locale][key]; ok {
		return true
	}
	_, ok := plurals[locale][key]
	return ok
}

// T returns the message for key in locale, formatted with args.
// Missing keys fall back to English, then to the key itself.
func T(locale string, key Key, args ...any) string {
	if !has(locale, key) {
		locale = DefaultLocale
	}
	if !has(locale, key) {
		return string(key)
	}
	return printers[locale].Sprintf(string(key), args...)
}
