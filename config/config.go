package config

type Config struct {
	Model    Model             `yaml:"model" validate:"required"`
	Twilio   Twilio            `yaml:"twilio" validate:"required"`
	Meta     Meta              `yaml:"meta" validate:"required"`
	Contacts map[string]string `yaml:"contacts" comment:"Known contact names mapped to phone numbers (leave a number empty to reply to the sender instead)"`
}

type Model struct {
	BaseURL     string `yaml:"base_url" default:"https://models.github.ai/inference" comment:"OpenAI-compatible inference endpoint" validate:"required"`
	Token       string `yaml:"token" comment:"API token for the inference endpoint" validate:"required"`
	Name        string `yaml:"name" default:"deepseek/DeepSeek-V3-0324" comment:"Model name" validate:"required"`
	TimeoutSecs int    `yaml:"timeout_secs" default:"120" comment:"Per-request timeout for model calls, in seconds" validate:"required"`
}

type Twilio struct {
	AccountSID string `yaml:"account_sid" comment:"Twilio Account SID" validate:"required"`
	AuthToken  string `yaml:"auth_token" comment:"Twilio Auth Token" validate:"required"`
	From       string `yaml:"from" default:"whatsapp:+14155238886" comment:"Sending WhatsApp number" validate:"required"`
}

type Meta struct {
	PostgresURL string `yaml:"postgres_url" default:"postgresql:///avisame" comment:"Postgres URL" validate:"required"`
	RedisURL    string `yaml:"redis_url" default:"redis://localhost:6379" comment:"Redis URL" validate:"required"`
	Port        string `yaml:"port" default:":8081" comment:"Port to run the server on" validate:"required"`
}
