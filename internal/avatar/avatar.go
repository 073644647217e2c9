// Package avatar resolves the profile picture from one of four mutually
// exclusive sources and builds the column patch that keeps the profile's
// avatar fields consistent.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"portfolio_backend/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindUpload   Kind = "upload"
	KindURL      Kind = "url"
	KindQQ       Kind = "qq"
	KindGravatar Kind = "gravatar"
)

// Kinds - все допустимые источники аватара
func Kinds() []Kind {
	return []Kind{KindUpload, KindURL, KindQQ, KindGravatar}
}

func (k Kind) Valid() bool {
	switch k {
	case KindUpload, KindURL, KindQQ, KindGravatar:
		return true
	}
	return false
}

const (
	qqTemplate    = "https://q1.qlogo.cn/g?b=qq&nk=%s&s=640"
	gravatarQuery = "?s=400&d=mp"

	DefaultGravatarServer = "https://www.gravatar.com/avatar/"
	// CustomServer - значение gravatarServer, при котором база берется из gravatarCustomServer
	CustomServer = "custom"
)

// GravatarMirrors - известные зеркала Gravatar
var GravatarMirrors = []string{
	DefaultGravatarServer,
	"https://cravatar.cn/avatar/",
	"https://cdn.v2ex.com/gravatar/",
	"https://sdn.geekzu.org/avatar/",
	"https://gravatar.loli.net/avatar/",
}

// Params - сырые параметры из запроса. Значимы только поля выбранного источника.
type Params struct {
	UploadURL            string `json:"avatar"`
	CustomURL            string `json:"avatarCustomUrl"`
	QQNumber             string `json:"avatarQQNumber"`
	GravatarEmail        string `json:"avatarGravatarEmail"`
	GravatarServer       string `json:"avatarGravatarServer"`
	GravatarCustomServer string `json:"avatarGravatarCustomServer"`
}

// Source - размеченное объединение Upload | URL | QQ | Gravatar.
// Реализации есть только в этом пакете.
type Source interface {
	Kind() Kind
	// Resolve возвращает готовый к показу URL
	Resolve() string
	fill(p *Patch)
}

type Upload struct {
	FileURL string
}

type URL struct {
	Address string
}

type QQ struct {
	Number string
}

// Gravatar хранит уже нормализованный email и базовый URL сервера с "/" на конце
type Gravatar struct {
	Email  string
	Server string
}

func (Upload) Kind() Kind   { return KindUpload }
func (URL) Kind() Kind      { return KindURL }
func (QQ) Kind() Kind       { return KindQQ }
func (Gravatar) Kind() Kind { return KindGravatar }

func (s Upload) Resolve() string { return s.FileURL }
func (s URL) Resolve() string    { return s.Address }
func (s QQ) Resolve() string     { return fmt.Sprintf(qqTemplate, s.Number) }

func (s Gravatar) Resolve() string {
	sum := md5.Sum([]byte(s.Email))
	return s.Server + hex.EncodeToString(sum[:]) + gravatarQuery
}

var validate = validator.New()

// FromParams проверяет параметры выбранного источника и собирает Source.
// Пустой параметр активного источника - всегда ошибка валидации.
func FromParams(kind Kind, p Params) (Source, error) {
	switch kind {
	case KindUpload:
		fileURL := strings.TrimSpace(p.UploadURL)
		if fileURL == "" {
			return nil, fieldError("avatar", "An uploaded file URL is required")
		}
		if !isUploadURL(fileURL) {
			return nil, fieldError("avatar", "Must be an absolute URL or a /uploads path")
		}
		return Upload{FileURL: fileURL}, nil

	case KindURL:
		address := p.CustomURL
		if validate.Var(address, "required,http_url") != nil {
			return nil, fieldError("avatarCustomUrl", "Must be a valid absolute URL")
		}
		return URL{Address: address}, nil

	case KindQQ:
		number := strings.TrimSpace(p.QQNumber)
		if validate.Var(number, "required,number,max=20") != nil {
			return nil, fieldError("avatarQQNumber", "Must be a numeric QQ number")
		}
		return QQ{Number: number}, nil

	case KindGravatar:
		email := NormalizeEmail(p.GravatarEmail)
		if validate.Var(email, "required,email") != nil {
			return nil, fieldError("avatarGravatarEmail", "Must be a valid email address")
		}
		server, err := gravatarServer(p.GravatarServer, p.GravatarCustomServer)
		if err != nil {
			return nil, err
		}
		return Gravatar{Email: email, Server: server}, nil
	}

	return nil, fieldError("avatarSource", "Must be one of: upload, url, qq, gravatar")
}

// ResolveURL - итоговый URL аватара для источника и параметров
func ResolveURL(kind Kind, p Params) (string, error) {
	src, err := FromParams(kind, p)
	if err != nil {
		return "", err
	}
	return src.Resolve(), nil
}

// NormalizeEmail - trim + lower, как того требует хэш Gravatar
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func gravatarServer(server, custom string) (string, error) {
	server = strings.TrimSpace(server)

	switch {
	case server == "":
		return DefaultGravatarServer, nil
	case server == CustomServer:
		custom = strings.TrimSpace(custom)
		if validate.Var(custom, "required,http_url") != nil {
			return "", fieldError("avatarGravatarCustomServer", "Must be a valid absolute URL")
		}
		return withTrailingSlash(custom), nil
	}

	for _, mirror := range GravatarMirrors {
		if server == mirror {
			return mirror, nil
		}
	}

	// Ранее сохраненный пользовательский сервер приходит обратно как URL
	if validate.Var(server, "http_url") == nil {
		return withTrailingSlash(server), nil
	}
	return "", fieldError("avatarGravatarServer", "Must be a known mirror, a URL or \"custom\"")
}

// isUploadURL - абсолютный http(s) URL или путь от корня сайта (локальное хранилище с BaseURL "/uploads")
func isUploadURL(s string) bool {
	if validate.Var(s, "http_url") == nil {
		return true
	}
	if !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme == "" && u.Host == "" && !strings.ContainsAny(s, " \t\n\\")
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func fieldError(field, msg string) *apperrors.AppError {
	return apperrors.ValidationError(map[string]string{field: msg})
}
