package locale

import "sync"

type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// Store holds the display language. The direction flag is derived inside
// SetLang so lang and isRTL never disagree.
type Store struct {
	mu    sync.RWMutex
	lang  Lang
	isRTL bool
}

func NewStore(defaultLang string) *Store {
	s := &Store{}
	lang := Lang(defaultLang)
	if lang != LangArabic {
		lang = LangEnglish
	}
	s.SetLang(lang)
	return s
}

func (s *Store) SetLang(lang Lang) {
	if lang != LangEnglish && lang != LangArabic {
		return
	}
	s.mu.Lock()
	s.lang = lang
	s.isRTL = lang == LangArabic
	s.mu.Unlock()
}

// Toggle flips between the two supported languages.
func (s *Store) Toggle() {
	if s.Lang() == LangEnglish {
		s.SetLang(LangArabic)
	} else {
		s.SetLang(LangEnglish)
	}
}

func (s *Store) Lang() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *Store) IsRTL() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRTL
}

// T resolves a message key in the current language, falling back to
// English and then to the key itself.
func (s *Store) T(key string) string {
	lang := s.Lang()
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangEnglish][key]; ok {
		return msg
	}
	return key
}
