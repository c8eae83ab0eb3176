package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"storesetup-backend/model"
)

// HistoryWindow is the fixed sliding window of prior turns sent with
// each request. Older turns are dropped, not summarized.
const HistoryWindow = 10

type Client struct {
	model *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	m := client.GenerativeModel("gemini-2.0-flash-001")

	// Set response MIME type to JSON
	m.ResponseMIMEType = "application/json"

	return &Client{model: m}, nil
}

// Turn is one prior message in the running conversation.
type Turn struct {
	Role    model.MessageRole
	Content string
}

// Request is one assistant invocation. ExistingCategoryIDs is
// out-of-band store context carried alongside the prompt; only the
// rendered category block is substituted into the prompt body.
type Request struct {
	Message             string
	Locale              string // "ar" or "en"
	StoreName           string
	History             []Turn
	ExistingCategories  []model.RemoteCategory
	ExistingCategoryIDs []string
}

// WindowHistory keeps the most recent HistoryWindow turns.
func WindowHistory(turns []Turn) []Turn {
	if len(turns) <= HistoryWindow {
		return turns
	}
	return turns[len(turns)-HistoryWindow:]
}

// CategoryContextBlock renders the existing remote categories as a
// textual block appended to the merchant message, so the model does not
// re-suggest what already exists.
func CategoryContextBlock(categories []model.RemoteCategory) string {
	if len(categories) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("The store already has these categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s / %s (%d products)\n", c.NameAr, c.NameEn, c.ProductsCount)
	}
	return b.String()
}

// Generate produces one structured turn for the merchant message.
func (c *Client) Generate(ctx context.Context, req Request) (*Reply, error) {
	historyText := ""
	for _, turn := range WindowHistory(req.History) {
		role := "Merchant"
		if turn.Role == model.RoleAssistant {
			role = "Assistant"
		}
		historyText += fmt.Sprintf("- %s: %s\n", role, turn.Content)
	}

	userMessage := req.Message
	if block := CategoryContextBlock(req.ExistingCategories); block != "" {
		userMessage = userMessage + "\n\n" + block
	}

	replyLanguage := "Arabic"
	if req.Locale == "en" {
		replyLanguage = "English"
	}

	promptText := fmt.Sprintf(`
You are an e-commerce store setup assistant helping a merchant configure their online store "%s".
You guide them through: business profile, categories, products, then marketing (themes, logo, landing page).

**Conversation History:**
%s

**Current Merchant Message:**
"%s"

**Instructions:**
1. Reply conversationally in %s.
2. When the merchant is ready for a concrete step, attach exactly one action.
3. Category and product names must always be bilingual (Arabic + English).
4. Never suggest a category that already exists on the store.

**Output Format:**
Respond in JSON only, shaped exactly:
{
  "message": "conversational reply to the merchant",
  "action": { "type": "<action type>", "data": { ... } }
}

Action types and data shapes:
- "none": no data. Use when the turn is purely conversational.
- "suggest_categories": {"categories": [{"nameAr": "...", "nameEn": "..."}]}
- "preview_product": {"nameAr": "...", "nameEn": "...", "descriptionAr": "...", "descriptionEn": "...", "price": 0, "variants": []}
- "preview_coupon": {"code": "...", "discountType": "percentage"|"fixed", "discountValue": 0, "expiryDate": "", "minOrderValue": 0}
- "suggest_themes": {}
- "generate_logo": {"storeName": "", "primaryColor": "", "logoPrompt": ""}
- "bulk_products": {"products": [{"nameAr": "...", "nameEn": "...", "price": 0}]}
- "generate_landing_page": {"storeName": "", "primaryColor": "", "hero": {}, "features": [], "seoTitle": "", "seoDescription": ""}
`, req.StoreName, historyText, userMessage, replyLanguage)

	resp, err := c.model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, isText := part.(genai.Text)
	if !isText {
		return nil, fmt.Errorf("unexpected response type")
	}

	return ParseReply(string(txt)), nil
}
