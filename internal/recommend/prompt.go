package recommend

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

var promptTemplate = template.Must(template.New("prompt").Parse(`
Sen profesyonel bir hediye danışmanısın. Kullanıcının verdiği TÜM detayları analiz ederek, Türkiye pazarında gerçekten satılan ve bütçeye uygun 3 hediye önerisi yap.

USER CONTEXT (BU BİLGİLERİN HEPSİNİ KULLAN):
1. Kime: {{.Recipient}}
2. Yakınlık: {{.Closeness}}
3. Bütçe: {{.Budget}} TL (BU LİMİTİ ASLA AŞMA)
4. İlgi Alanları: {{.Interests}}
5. Özel Gün: {{.Occasion}}

FİYATLANDIRMA TALİMATI:
- Verdiğin fiyatlar "2024 Türkiye E-Ticaret Ortalaması" olmalıdır.
- "Tahmini: X TL" formatında yaz.
- Asla bütçeyi aşan ürün önerme.

ÇIKTI FORMATI (JSON Dizisi):
[
  {
    "id": "unique_id",
    "title": "Ürün Tam Adı (Marka Model)",
    "description": "Neden bu kişiye uygun? (2 cümle)",
    "priceRange": "Tahmini: 1500 TL",
    "category": "Kategori",
    "reason": "Seçilme nedeni",
    "searchQuery": "Ürünün Google'da en iyi fotoğrafını bulacak net arama terimi (örn: 'JBL Tune 510BT Beyaz Kutu')"
  }
]
`))

// BuildPrompt renders the advisor prompt for state.
func BuildPrompt(state wizard.State) string {
	data := struct {
		Recipient, Closeness, Budget, Interests, Occasion string
	}{
		Budget:    strconv.FormatFloat(state.Budget, 'f', -1, 64),
		Interests: strings.Join(state.Interests, ", "),
		Occasion:  "Belirtilmedi",
	}
	if state.Recipient != nil {
		data.Recipient = string(*state.Recipient)
	}
	if state.Closeness != nil {
		data.Closeness = string(*state.Closeness)
	}
	if state.Occasion != nil {
		data.Occasion = string(*state.Occasion)
	}
	var buf bytes.Buffer
	// the template only reads string fields, execution cannot fail
	_ = promptTemplate.Execute(&buf, data)
	return buf.String()
}
