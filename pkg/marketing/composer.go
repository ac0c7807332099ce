package marketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/vrocha/aquagas-api/pkg/chat"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

const (
	anthropicAPIEndpoint = "https://api.anthropic.com/v1/messages"
	defaultModel         = "claude-3-sonnet-20240229"
)

// Briefing descreve a campanha que o operador quer divulgar
type Briefing struct {
	Product   string // produto em destaque (ex: "botijão P13")
	Promotion string // condição da oferta (ex: "R$ 5 de desconto na troca")
	Audience  string // público (ex: "clientes do bairro Centro")
	Tone      string // tom do texto (ex: "informal")
}

// Composer gera textos promocionais para envio via WhatsApp usando a
// API da Anthropic e guarda o histórico de composições
type Composer struct {
	apiKey     string
	client     *http.Client
	logger     logger.Logger
	repository chat.Repository
}

// NewComposer cria um novo compositor de marketing
func NewComposer(logger logger.Logger, repository chat.Repository) (*Composer, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY não encontrada nas variáveis de ambiente")
	}

	return &Composer{
		apiKey:     apiKey,
		client:     &http.Client{},
		logger:     logger,
		repository: repository,
	}, nil
}

// Message representa uma mensagem para a API da Anthropic
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
	System    string    `json:"system,omitempty"`
}

const systemPrompt = "Você é o redator de marketing de uma distribuidora de gás e água mineral. " +
	"Escreva mensagens curtas de divulgação para WhatsApp, em português do Brasil, " +
	"prontas para envio, sem assunto e sem assinatura. Use no máximo dois emojis."

// prompt monta a mensagem de usuário a partir do briefing
func (b Briefing) prompt() string {
	var parts []string
	parts = append(parts, "Escreva uma mensagem promocional sobre: "+b.Product)
	if b.Promotion != "" {
		parts = append(parts, "Oferta: "+b.Promotion)
	}
	if b.Audience != "" {
		parts = append(parts, "Público: "+b.Audience)
	}
	if b.Tone != "" {
		parts = append(parts, "Tom: "+b.Tone)
	}
	return strings.Join(parts, "\n")
}

// GetHistory retorna o histórico de composições de um operador
func (c *Composer) GetHistory(ctx context.Context, userID string) ([]chat.Message, error) {
	messages, err := c.repository.GetUserHistory(ctx, userID, 50, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de composições: %w", err)
	}
	return messages, nil
}

// Compose gera o texto promocional de um briefing e registra o par
// briefing/texto no histórico do operador
func (c *Composer) Compose(ctx context.Context, briefing Briefing, userID string) (string, error) {
	prompt := briefing.prompt()

	userMessage := &chat.Message{
		UserID:  userID,
		Role:    "user",
		Content: prompt,
	}
	if err := c.repository.SaveMessage(ctx, userMessage); err != nil {
		return "", fmt.Errorf("erro ao salvar briefing no histórico: %w", err)
	}

	reqBody := messageRequest{
		Model:     defaultModel,
		MaxTokens: 1000,
		Messages:  []Message{{Role: "user", Content: prompt}},
		System:    systemPrompt,
	}

	c.logger.Info("Enviando requisição para API Anthropic", "model", reqBody.Model)

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", anthropicAPIEndpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("API retornou erro", "status", resp.Status, "body", string(respBody))
		return "", fmt.Errorf("erro no serviço de IA: %s", resp.Status)
	}

	var apiResp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("erro ao deserializar resposta: %w", err)
	}

	var text string
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("serviço de IA retornou resposta vazia")
	}

	assistantMessage := &chat.Message{
		UserID:  userID,
		Role:    "assistant",
		Content: text,
	}
	if err := c.repository.SaveMessage(ctx, assistantMessage); err != nil {
		// O texto já foi gerado; falha de histórico não o descarta
		c.logger.Error("Erro ao salvar texto gerado no histórico", "error", err)
	}

	return text, nil
}
