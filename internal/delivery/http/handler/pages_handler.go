package handler

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/travelguide-web/internal/domain"
	apperrors "github.com/travelguide-web/internal/pkg/errors"
	"github.com/travelguide-web/internal/usecase"
	"github.com/travelguide-web/web"
	"go.uber.org/zap"
)

// PagesHandler - рендеринг страниц сайта и админки из встроенных шаблонов
type PagesHandler struct {
	templates *template.Template
	placeUC   *usecase.PlaceUseCase
	logger    *zap.Logger
}

// NewPagesHandler - создание нового PagesHandler
func NewPagesHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) (*PagesHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"str": derefString,
	}).ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PagesHandler{
		templates: tmpl,
		placeUC:   placeUC,
		logger:    logger,
	}, nil
}

// HomeData - данные главной страницы
type HomeData struct {
	Title      string
	Tagline    string
	Lead       string
	Features   []Feature
	PainPoints []PainPoint
	Audiences  []Audience
	Story      Story
	StoreURL   string
}

// Story - блок "Our Story" на главной странице
type Story struct {
	Heading string
	Lead    string
	Quote   string
	Cards   []StoryCard
}

// StoryCard - карточка истории или ценности
type StoryCard struct {
	Title       string
	Description string
}

// Feature - карточка возможности приложения
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// PainPoint - проблема туриста, которую закрывает приложение
type PainPoint struct {
	Stat        string
	Description string
}

// Audience - целевая аудитория
type Audience struct {
	Title    string
	Subtitle string
	Points   []string
}

// Home - главная маркетинговая страница
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return h.render(c, "home.html", homeContent())
}

// Privacy - страница политики конфиденциальности
func (h *PagesHandler) Privacy(c *fiber.Ctx) error {
	return h.render(c, "privacy.html", fiber.Map{
		"Title": "Privacy Policy",
	})
}

// AdminPlacesData - данные страницы админки
type AdminPlacesData struct {
	Places    []*domain.Place
	Total     int
	Sort      domain.SortKey
	Dir       domain.SortDirection
	LoadError string
}

// AdminPlaces - страница управления каталогом мест. Если начальная загрузка
// списка не удалась, страница рендерится в деградированном режиме: баннер с
// ошибкой и отключенные кнопки мутаций.
func (h *PagesHandler) AdminPlaces(c *fiber.Ctx) error {
	data := AdminPlacesData{
		Sort: domain.ParseSortKey(c.Query("sort")),
		Dir:  domain.ParseSortDirection(c.Query("dir")),
	}

	places, err := h.placeUC.ListPlaces(c.Context())
	if err != nil {
		h.logger.Error("admin places initial fetch failed", zap.Error(err))
		data.LoadError = loadErrorMessage(err)
	} else {
		domain.SortPlaces(places, data.Sort, data.Dir)
		data.Places = places
		data.Total = len(places)
	}

	return h.render(c, "admin_places.html", data)
}

func (h *PagesHandler) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func loadErrorMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Unable to load places"
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// homeContent - статическое наполнение главной страницы
func homeContent() HomeData {
	return HomeData{
		Title:   "Wander",
		Tagline: "Your Personalized Local Guide In Your Pocket",
		Lead: "The only app you need when you land in Thailand. Discover trending places, " +
			"get AI recommendations, and explore like a local. All free.",
		StoreURL: "https://apps.apple.com/th/app/wander-thailand/id6754048462",
		Features: []Feature{
			{
				Icon:  "🧭",
				Title: "AI Trip Planner",
				Description: "Get personalized recommendations based on your preferences. " +
					"Create full-day plans with just a few clicks.",
			},
			{
				Icon:  "🔥",
				Title: "Tinder for Places",
				Description: "Swipe right to save trending spots, left to skip. " +
					"The algorithm keeps you exploring new gems.",
			},
			{
				Icon:  "🎲",
				Title: "Random Place Picker",
				Description: "Can't decide? We'll pick for you! Filter by activity, food, " +
					"nightlife, or chill spots within your radius.",
			},
			{
				Icon:  "🛟",
				Title: "Safety & Emergency",
				Description: "Real-time safety alerts and scam detection. One-touch " +
					"connection to tourist police with GPS.",
			},
			{
				Icon:  "🗣️",
				Title: "Smart Translation",
				Description: "Real-time voice translation for Thai-English conversations. " +
					"Visual translation for signs, menus, and documents.",
			},
			{
				Icon:  "🚇",
				Title: "Smart Navigation",
				Description: "Multi-modal route planning with BTS, MRT, buses, and boats. " +
					"Offline maps available for download.",
			},
		},
		Story: Story{
			Heading: "The First In-Depth Digital Guide",
			Lead:    "Designed to help you experience Thailand in your very own way",
			Quote:   "To truly travel in Thailand, you don't just move — you wander.",
			Cards: []StoryCard{
				{
					Title: "Born from Curiosity",
					Description: "Born from the curiosity of local travelers, Wander blends local " +
						"insights, feedback, and discovery to craft a guide that feels alive. We go " +
						"beyond the surface — mapping stories behind places, connecting hidden cafés " +
						"with creative studios, and curating routes that change with the rhythm of " +
						"Thai trends.",
				},
				{
					Title: "Our Mission",
					Description: "To make exploration effortless and personalized. Wander isn't just " +
						"a list of places; it's a living ecosystem that evolves with travelers and " +
						"locals alike. Whether you're chasing sunrise hikes in Chiang Mai or " +
						"late-night ramen in Ari, our platform guides you with precision, " +
						"personality, and care.",
				},
				{
					Title: "Authenticity Over Algorithms",
					Description: "Every recommendation comes from real insight, local context, and a " +
						"genuine love for Thailand's culture and community. We believe in curating " +
						"experiences that matter, not just what trends on social media.",
				},
			},
		},
		PainPoints: []PainPoint{
			{Stat: "48%", Description: "of tourist complaints involve scams"},
			{Stat: "🗣", Description: "Thai vendors struggle with fast English"},
			{Stat: "🛵", Description: "Thailand has one of the world's highest road fatality rates"},
		},
		Audiences: []Audience{
			{
				Title:    "Young Explorers",
				Subtitle: "Ages 15-30 • Students & Young Professionals",
				Points: []string{
					"New and trendy places (really up-to-date)",
					"Randomizer for immediate suggestions",
					"Tinder-style place discovery",
				},
			},
			{
				Title:    "First-Time Visitors",
				Subtitle: "Ages 18-35 • Solo, Groups, or Family",
				Points: []string{
					"Personalized and local-level recommendations",
					"Language translation",
					"Weather warnings and routing",
				},
			},
			{
				Title:    "Frequent Flyers",
				Subtitle: "Seasoned Travelers • Experience Seekers",
				Points: []string{
					"Exploring new in-trend areas, foods, and activities",
					"E-wallet / QR payment integration",
					"Advanced trip planning tools",
				},
			},
		},
	}
}
