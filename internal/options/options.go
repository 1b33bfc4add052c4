// Package options exposes the labelled choices the wizard UI renders.
package options

import "github.com/bilmem-net/ai-hediye/internal/wizard"

type RecipientOption struct {
	ID      wizard.Recipient `json:"id"`
	Label   string           `json:"label"`
	Icon    string           `json:"icon"`
	Tagline string           `json:"tagline"`
}

type ClosenessOption struct {
	ID          wizard.Closeness `json:"id"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

type OccasionOption struct {
	ID    wizard.Occasion `json:"id"`
	Label string          `json:"label"`
	Icon  string          `json:"icon"`
}

type InterestOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Budget struct {
	Presets []int `json:"presets"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
	Default int   `json:"default"`
}

// Options is the full set returned by the options endpoint.
type Options struct {
	Recipients   []RecipientOption `json:"recipients"`
	Closeness    []ClosenessOption `json:"closeness"`
	Budget       Budget            `json:"budget"`
	Interests    []InterestOption  `json:"interests"`
	MaxInterests int               `json:"maxInterests"`
	Occasions    []OccasionOption  `json:"occasions"`
	Steps        []Step            `json:"steps"`
}

const (
	BudgetMin = 100
	BudgetMax = 15000
)

// All returns a fresh copy of every option list.
func All() Options {
	return Options{
		Recipients: []RecipientOption{
			{wizard.RecipientPartner, "Sevgili / Eş", "💕", "Hayatınızın aşkı için en özeli"},
			{wizard.RecipientFriend, "Arkadaş", "🤝", "Dostluğunuzu pekiştirecek seçimler"},
			{wizard.RecipientMother, "Anne", "👩", "Dünyanın en kıymetlisine küçük bir teşekkür"},
			{wizard.RecipientFather, "Baba", "👨", "Kahramanınıza yakışacak hediyeler"},
			{wizard.RecipientSibling, "Kardeş", "👫", "Birlikte büyüdüğünüz o eşsiz bağ için"},
			{wizard.RecipientColleague, "İş Arkadaşı", "💼", "Ofis günlerini güzelleştirecek detaylar"},
		},
		Closeness: []ClosenessOption{
			{wizard.ClosenessClose, "Yakın", "Çok samimi, her şeyi paylaşırız"},
			{wizard.ClosenessNormal, "Normal", "Düzenli görüşürüz, iyi anlaşırız"},
			{wizard.ClosenessFormal, "Resmi", "Profesyonel veya mesafeli ilişki"},
		},
		Budget: Budget{
			Presets: []int{500, 1000, 2000, 5000, 15000},
			Min:     BudgetMin,
			Max:     BudgetMax,
			Default: wizard.DefaultBudget,
		},
		Interests: []InterestOption{
			{"teknoloji", "Teknoloji", "💻"},
			{"moda", "Moda", "👗"},
			{"spor", "Spor & Fitness", "🏃"},
			{"muzik", "Müzik", "🎵"},
			{"kitap", "Kitap & Okuma", "📚"},
			{"yemek", "Yemek & Mutfak", "🍳"},
			{"oyun", "Oyun & Gaming", "🎮"},
			{"seyahat", "Seyahat", "✈️"},
			{"sanat", "Sanat & El İşi", "🎨"},
			{"bahce", "Bahçe & Doğa", "🌱"},
			{"fotograf", "Fotoğrafçılık", "📷"},
			{"guzellik", "Güzellik & Bakım", "💄"},
			{"ev", "Ev & Dekorasyon", "🏠"},
			{"koleksiyon", "Koleksiyon", "🏆"},
			{"evcil", "Evcil Hayvan", "🐾"},
			{"diger", "Sen Belirt", "✨"},
		},
		MaxInterests: wizard.MaxInterests,
		Occasions: []OccasionOption{
			{wizard.OccasionBirthday, "Doğum Günü", "🎂"},
			{wizard.OccasionNewYear, "Yılbaşı", "🎄"},
			{wizard.OccasionValentines, "Sevgililer Günü", "❤️"},
			{wizard.OccasionGraduation, "Mezuniyet", "🎓"},
			{wizard.OccasionJustGesture, "Sadece Bir Jest", "🎁"},
		},
		Steps: []Step{
			{1, "Kime?", "Hediye alacağınız kişi"},
			{2, "Yakınlık", "İlişki türünüz"},
			{3, "Bütçe", "Harcama limitiniz"},
			{4, "İlgi Alanları", "Nelerden hoşlanır?"},
			{5, "Özel Gün", "Hediye vesilesi"},
		},
	}
}
