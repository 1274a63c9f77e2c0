package middleware

import (
	"net/http"

	"cinema-catalog/pkg/locale"
	"cinema-catalog/pkg/utils"
)

// LanguageCookie is the cookie the web client stores its language choice in.
const LanguageCookie = "i18nextLng"

// Locale resolves the request locale once, from ?lang=, the language cookie or
// Accept-Language in that order, and stores it in the context.
func Locale(resolver *locale.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidates := []string{r.URL.Query().Get("lang")}
			if c, err := r.Cookie(LanguageCookie); err == nil {
				candidates = append(candidates, c.Value)
			}
			candidates = append(candidates, r.Header.Get("Accept-Language"))

			loc := resolver.Resolve(candidates...)
			w.Header().Set("Content-Language", loc)
			next.ServeHTTP(w, r.WithContext(utils.SetLocaleContext(r.Context(), loc)))
		})
	}
}
