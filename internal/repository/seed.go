package repository

import (
	"ecotourism/internal/models"
)

// SeedNews - начальный набор новостей, акций и эко-событий.
// Используется при первом запуске и как откат при битых данных в хранилище
func SeedNews() []models.NewsItem {
	return []models.NewsItem{
		{
			ID:          "eco_event_1",
			Type:        models.TypeEcoEvent,
			Title:       "Акция \"Посади дерево\"",
			Description: "Массовая посадка деревьев в парках и скверах города. Каждое посаженное дерево компенсирует 0.2 т CO₂ в год.",
			Date:        "2024-07-25",
			Region:      "Алматы",
			Status:      models.StatusActive,
		},
		{
			ID:          "eco_event_2",
			Type:        models.TypeEcoEvent,
			Title:       "Уборка мусора на озере Балхаш",
			Description: "Экологическая акция по очистке берегов озера Балхаш от пластикового мусора и загрязнений.",
			Date:        "2024-07-28",
			Region:      "Алматинская область",
			Status:      models.StatusActive,
		},
		{
			ID:          "eco_event_3",
			Type:        models.TypeEcoEvent,
			Title:       "Эко-марафон \"Зеленый город\"",
			Description: "Велосипедный марафон по экологическим маршрутам города с остановками для уборки мусора.",
			Date:        "2024-08-05",
			Region:      "Астана",
			Status:      models.StatusActive,
		},
		{
			ID:          "news_1",
			Type:        models.TypeNews,
			Title:       "Открытие нового эко-отеля в Алматы",
			Description: "В центре Алматы открылся новый эко-отель \"Зеленая долина\" с нулевым углеродным следом. Отель оснащен солнечными панелями и системой переработки отходов.",
			Date:        "2024-07-20",
			Region:      "Алматы",
			Status:      models.StatusActive,
		},
		{
			ID:          "news_2",
			Type:        models.TypeNews,
			Title:       "Новые велосипедные маршруты в Астане",
			Description: "В Астане открылись новые велосипедные маршруты для туристов. Общая протяженность маршрутов составляет 50 км.",
			Date:        "2024-07-22",
			Region:      "Астана",
			Status:      models.StatusActive,
		},
		{
			ID:          "news_3",
			Type:        models.TypeNews,
			Title:       "Запуск программы \"Эко-гид\"",
			Description: "Запущена новая программа сертификации экологических гидов. Первые 50 гидов уже получили сертификаты.",
			Date:        "2024-07-24",
			Region:      "Казахстан",
			Status:      models.StatusActive,
		},
		{
			ID:          "promotion_1",
			Type:        models.TypePromotion,
			Title:       "Скидка 20% на все эко-туры",
			Description: "Специальное предложение на все экологические туры до конца месяца. Включены велосипедные туры, пешие прогулки и эко-экскурсии.",
			Date:        "2024-07-21",
			Region:      "Казахстан",
			Status:      models.StatusActive,
			Discount:    "20%",
			ValidUntil:  "2024-07-31",
		},
		{
			ID:          "promotion_2",
			Type:        models.TypePromotion,
			Title:       "Бесплатные эко-экскурсии в выходные",
			Description: "В выходные дни бесплатные экскурсии по эко-маршрутам для всех желающих. Требуется предварительная регистрация.",
			Date:        "2024-07-23",
			Region:      "Алматы",
			Status:      models.StatusActive,
			Discount:    "100%",
			ValidUntil:  "2024-08-31",
		},
		{
			ID:          "promotion_3",
			Type:        models.TypePromotion,
			Title:       "Скидка 30% на эко-отели",
			Description: "Специальные цены на проживание в эко-отелях по всей стране. Включен завтрак из органических продуктов.",
			Date:        "2024-07-25",
			Region:      "Казахстан",
			Status:      models.StatusActive,
			Discount:    "30%",
			ValidUntil:  "2024-09-30",
		},
	}
}

// SeedCourses - начальный набор курсов для гидов
func SeedCourses() []models.Course {
	return []models.Course{
		{
			ID:          "course_1",
			Title:       "Основы экологического туризма",
			Description: "Базовый курс по принципам эко-туризма, устойчивому развитию и минимизации воздействия на природу.",
			Duration:    "40 часов",
			Level:       "Начальный",
			Instructor:  "Айгуль Сатпаева",
			Status:      models.StatusActive,
		},
		{
			ID:          "course_2",
			Title:       "Экологическая безопасность в горах",
			Description: "Углубленный курс по безопасному проведению горных туров и оказанию первой помощи.",
			Duration:    "60 часов",
			Level:       "Продвинутый",
			Instructor:  "Марат Касымов",
			Status:      models.StatusActive,
		},
		{
			ID:          "course_3",
			Title:       "Устойчивое развитие регионов",
			Description: "Курс о влиянии туризма на развитие регионов и углеродной компенсации.",
			Duration:    "50 часов",
			Level:       "Средний",
			Instructor:  "Анна Ким",
			Status:      models.StatusInactive,
		},
	}
}
