package repositories

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

var duplicateKeyRe = regexp.MustCompile(`for key '([^']+)'`)

// duplicateKey reports whether err is a MySQL duplicate-entry error and, if so,
// the violated key name without its table prefix.
func duplicateKey(err error) (string, bool) {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != mysqlDuplicateEntry {
		return "", false
	}
	m := duplicateKeyRe.FindStringSubmatch(me.Message)
	if len(m) < 2 {
		return "", true
	}
	key := m[1]
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	return key, true
}
