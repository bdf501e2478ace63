package forms

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/ClusterLabs/striker-testinput/handler"
	"github.com/ClusterLabs/striker-testinput/pkg/binder"
	"github.com/ClusterLabs/striker-testinput/pkg/cache"
	"github.com/ClusterLabs/striker-testinput/pkg/i18n"
	"github.com/ClusterLabs/striker-testinput/pkg/logger"
	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
)

// Service exposes a Registry over HTTP.
type Service struct {
	registry     *Registry
	log          *slog.Logger
	maxBodyBytes int64
	translator   *i18n.Translator
	patterns     *cache.LRU[string, *regexp.Regexp]
	errorHandler handler.ErrorHandler
}

// DefaultPatternCacheSize bounds the compiled exclude patterns kept.
const DefaultPatternCacheSize = 128

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxBodyBytes limits validation request bodies.
func WithMaxBodyBytes(n int64) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithPatternCacheSize sets how many compiled exclude patterns are kept.
func WithPatternCacheSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.patterns = cache.NewLRU[string, *regexp.Regexp](n)
		}
	}
}

// WithTranslator localizes failure messages by the Accept-Language header.
func WithTranslator(tr *i18n.Translator) ServiceOption {
	return func(s *Service) { s.translator = tr }
}

func NewService(registry *Registry, opts ...ServiceOption) *Service {
	s := &Service{
		registry:     registry,
		log:          slog.New(slog.DiscardHandler),
		maxBodyBytes: binder.DefaultMaxJSONSize,
		patterns:     cache.NewLRU[string, *regexp.Regexp](DefaultPatternCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errorHandler = handler.NewErrorHandler(s.log)
	return s
}

// Handle returns the router to mount under /api/forms.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Post("/{formID}/validate", handler.Wrap(s.validate,
		handler.WithBinders[ValidateRequest](
			binder.Path(chi.URLParam),
			binder.JSON(binder.WithMaxBytes(s.maxBodyBytes)),
		),
		handler.WithErrorHandler[ValidateRequest](s.errorHandler),
	))

	return r
}

// FormSummary is one entry of the form list.
type FormSummary struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

func (s *Service) list(_ handler.Context, _ struct{}) handler.Response {
	forms := s.registry.List()
	out := make([]FormSummary, 0, len(forms))
	for _, f := range forms {
		out = append(out, FormSummary{ID: f.ID, Title: f.Title, Fields: f.Fields()})
	}
	return handler.JSON(out)
}

// ValidateRequest is the body of POST /{formID}/validate.
type ValidateRequest struct {
	FormID string `path:"formID" json:"-"`

	Inputs                map[string]testinput.Input `json:"inputs"`
	ExcludeTestIDs        []string                   `json:"excludeTestIds,omitempty"`
	ExcludeTestIDsPattern string                     `json:"excludeTestIdsPattern,omitempty"`
	IsContinueOnFailure   bool                       `json:"isContinueOnFailure,omitempty"`
	IsTestAll             bool                       `json:"isTestAll,omitempty"`
}

// ValidateResponse is the data of a validation response.
type ValidateResponse struct {
	OK       bool                    `json:"ok"`
	Messages map[string]string       `json:"messages"`
	Batches  []testinput.BatchResult `json:"batches"`
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	form, ok := s.registry.Get(req.FormID)
	if !ok {
		return handler.JSONError(handler.ErrNotFound)
	}

	run := testinput.Request{
		Inputs:              req.Inputs,
		ExcludeTestIDs:      req.ExcludeTestIDs,
		IsContinueOnFailure: req.IsContinueOnFailure,
		IsTestAll:           req.IsTestAll,
	}
	if req.ExcludeTestIDsPattern != "" {
		re, err := s.patterns.GetOrLoad(req.ExcludeTestIDsPattern, func() (*regexp.Regexp, error) {
			return regexp.Compile(req.ExcludeTestIDsPattern)
		})
		if err != nil {
			return handler.JSONError(fmt.Errorf("%w: exclude pattern: %v", handler.ErrBadRequest, err))
		}
		run.ExcludeTestIDsPattern = re
	}

	res := testinput.Run(form.Build(), run, testinput.WithLogger(s.log))

	s.log.InfoContext(ctx, "form validated",
		logger.FormID(form.ID),
		logger.Component("forms"),
		slog.Bool("ok", res.OK),
		slog.Int("batches", len(res.Batches)),
		slog.Int("failures", len(res.Failures())),
	)

	if s.translator != nil {
		lang := s.translator.Negotiate(ctx.Request().Header.Get("Accept-Language"))
		Localize(s.translator, lang, &res)
		ctx.ResponseWriter().Header().Set("Content-Language", lang)
	}

	if res.Batches == nil {
		res.Batches = []testinput.BatchResult{}
	}
	return handler.JSON(ValidateResponse{
		OK:       res.OK,
		Messages: res.Messages(),
		Batches:  res.Batches,
	})
}
