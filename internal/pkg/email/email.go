package email

import (
	"crypto/rand"
	"crypto/tls"
	"fmt"
	"math/big"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendVerificationEmail(toEmail, toName, code string) error
	SendWelcomeEmail(toEmail, toName string) error
	SendPasswordResetEmail(toEmail, resetURL string) error
	SendResetSuccessEmail(toEmail string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// devSkip logs instead of sending when SMTP credentials are not
// configured, so local development works without a mail server.
func (s *EmailServiceImpl) devSkip(toEmail, subject string, fields map[string]string) bool {
	if s.config.Username != "" && s.config.Password != "" {
		return false
	}
	evt := s.logger.Warn().Str("toEmail", toEmail).Str("subject", subject)
	for k, v := range fields {
		evt = evt.Str(k, v)
	}
	evt.Msg("SMTP credentials not configured - email not sent, payload logged for testing")
	return true
}

// SendVerificationEmail sends the 6-digit email verification code.
func (s *EmailServiceImpl) SendVerificationEmail(toEmail, toName, code string) error {
	subject := "Verifikasi Email - Tracer Study"
	if s.devSkip(toEmail, subject, map[string]string{"code": code}) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Verifikasi Email Anda</h2>
				<p>Halo %s,</p>
				<p>Akun tracer study Anda telah dibuat. Masukkan kode berikut untuk memverifikasi alamat email Anda:</p>
				<div style="text-align: center; margin: 30px 0;">
					<span style="font-size: 28px; letter-spacing: 8px; font-weight: bold;">%s</span>
				</div>
				<p>Kode ini berlaku selama 24 jam.</p>
				<p>Jika Anda tidak merasa mendaftar, abaikan email ini.</p>
			</div>
		</body>
		</html>
	`, toName, code)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendWelcomeEmail sends a welcome email once the account is verified.
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Selamat Datang di Tracer Study"
	if s.devSkip(toEmail, subject, map[string]string{"toName": toName}) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Selamat Datang!</h2>
				<p>Halo %s,</p>
				<p>Email Anda sudah terverifikasi dan akun Anda aktif. Silakan masuk dan lengkapi biodata serta kuesioner tracer study.</p>
				<p>Terima kasih telah bergabung.</p>
			</div>
		</body>
		</html>
	`, toName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendPasswordResetEmail sends the password reset link.
func (s *EmailServiceImpl) SendPasswordResetEmail(toEmail, resetURL string) error {
	subject := "Reset Password - Tracer Study"
	if s.devSkip(toEmail, subject, map[string]string{"resetURL": resetURL}) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Reset Password</h2>
				<p>Kami menerima permintaan untuk mengatur ulang password akun Anda.</p>
				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Reset Password</a>
				</div>
				<p>Tautan ini berlaku selama 1 jam.</p>
				<p>Jika Anda tidak meminta reset password, abaikan email ini.</p>
			</div>
		</body>
		</html>
	`, resetURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendResetSuccessEmail confirms that the password has been changed.
func (s *EmailServiceImpl) SendResetSuccessEmail(toEmail string) error {
	subject := "Password Berhasil Direset - Tracer Study"
	if s.devSkip(toEmail, subject, nil) {
		return nil
	}

	body := `
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Password Berhasil Direset</h2>
				<p>Password akun Anda baru saja diubah.</p>
				<p>Jika ini bukan Anda, segera hubungi administrator.</p>
			</div>
		</body>
		</html>
	`

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email over SMTP, with or without TLS.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}

// GenerateVerificationCode returns a random 6-digit numeric code for
// email verification.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
