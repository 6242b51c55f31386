package pkg

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	petname "github.com/dustinkirkland/golang-petname"
)

type LogLevel int32

const (
	LogStandard LogLevel = iota
	LogDebug
	LogVerbose
)

var logLevel int32

func SetLogLevel(l LogLevel) {
	atomic.StoreInt32(&logLevel, int32(l))
}

// Logf logs only when the configured level is at least l
func Logf(l LogLevel, format string, v ...interface{}) {
	if LogLevel(atomic.LoadInt32(&logLevel)) < l {
		return
	}
	log.Output(2, fmt.Sprintf(format, v...))
}

func InitLog(dest, prefix string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return nil
}

const maxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips characters that would break the leaderboard layout. An
// empty result is replaced by a random name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > maxNicknameLength {
		nick = nick[:maxNicknameLength]
	} else if nick == "" {
		nick = petname.Generate(2, "-")
	}

	return nick
}
