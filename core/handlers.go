package core

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/protocol"
	"github.com/labstack/echo/v4"
)

// rpcError is a failed RPC with the status the server answers with.
type rpcError struct {
	status  int
	message string
}

var errInvalidParameters = &rpcError{http.StatusBadRequest, "invalid parameters"}

func (tk *Tycoon) rpcHandler(c echo.Context) error {
	method := c.Param("method")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return tk.replyError(c, &rpcError{http.StatusBadRequest, "unreadable body"})
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = protocol.ContentTypePlain
	}

	enc, err := protocol.ResolveEncoding(contentType)
	if err != nil {
		return tk.replyError(c, &rpcError{http.StatusBadRequest, err.Error()})
	}

	rows, err := protocol.Deserialize(contentType, string(body))
	if err != nil {
		return tk.replyError(c, &rpcError{http.StatusBadRequest, err.Error()})
	}

	out, rerr := tk.handleCommand(method, protocol.TableToPairs(rows))
	if rerr != nil {
		tk.Logger.Debug("rpc failed", "method", method, "status", rerr.status, "error", rerr.message)
		return tk.replyError(c, rerr)
	}

	tk.Logger.Debug("rpc", "method", method, "encoding", enc.String())
	return tk.reply(c, enc, out)
}

func (tk *Tycoon) handleCommand(method string, params protocol.Pairs) (protocol.Pairs, *rpcError) {
	switch method {
	case "void":
		tk.cntMisc.Add(1)
		return nil, nil
	case "echo":
		tk.cntMisc.Add(1)
		return params, nil
	case "set":
		return tk.handleCommandSET(params)
	case "get":
		return tk.handleCommandGET(params)
	case "remove":
		return tk.handleCommandRemove(params)
	case "increment":
		return tk.handleCommandIncrement(params)
	case "increment_double":
		return tk.handleCommandIncrementDouble(params)
	case "report":
		return tk.handleCommandReport(), nil
	case "status":
		return tk.handleCommandStatus(), nil
	default:
		return nil, &rpcError{http.StatusNotImplemented, "not implemented"}
	}
}

func (tk *Tycoon) handleCommandSET(params protocol.Pairs) (protocol.Pairs, *rpcError) {
	key, ok := params.Get("key")
	if !ok {
		return nil, errInvalidParameters
	}
	value, ok := params.Get("value")
	if !ok {
		return nil, errInvalidParameters
	}

	xt, rerr := optionalInt(params, "xt")
	if rerr != nil {
		return nil, rerr
	}

	now := time.Now()

	tk.keyDirMu.Lock()
	tk.keyDir[key] = KeyDirEntry{Value: value, ExpiresAt: expiresAt(xt, now)}
	tk.keyDirMu.Unlock()

	tk.cntSet.Add(1)
	return nil, nil
}

// A missing record answers 200 with no value field rather than 450.
func (tk *Tycoon) handleCommandGET(params protocol.Pairs) (protocol.Pairs, *rpcError) {
	key, ok := params.Get("key")
	if !ok {
		return nil, errInvalidParameters
	}

	tk.cntGet.Add(1)

	entry, ok := tk.lookup(key, time.Now())
	if !ok {
		tk.cntGetMisses.Add(1)
		return nil, nil
	}

	var out protocol.Pairs
	out.Set("value", entry.Value)
	if entry.ExpiresAt != 0 {
		out.Set("xt", strconv.FormatInt(entry.ExpiresAt, 10))
	}

	return out, nil
}

func (tk *Tycoon) handleCommandRemove(params protocol.Pairs) (protocol.Pairs, *rpcError) {
	key, ok := params.Get("key")
	if !ok {
		return nil, errInvalidParameters
	}

	now := time.Now()

	tk.keyDirMu.Lock()
	defer tk.keyDirMu.Unlock()

	entry, ok := tk.keyDir[key]
	if !ok || entry.expired(now) {
		return nil, &rpcError{StatusLogicalInconsistency, "no record was found"}
	}

	delete(tk.keyDir, key)
	tk.cntRemove.Add(1)

	return nil, nil
}

func (tk *Tycoon) handleCommandIncrement(params protocol.Pairs) (protocol.Pairs, *rpcError) {
	key, ok := params.Get("key")
	if !ok {
		return nil, errInvalidParameters
	}

	numStr, _ := params.Get("num")
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return nil, errInvalidParameters
	}

	orig, rerr := optionalInt(params, "orig")
	if rerr != nil {
		return nil, rerr
	}
	xt, rerr := optionalInt(params, "xt")
	if rerr != nil {
		return nil, rerr
	}

	now := time.Now()

	tk.keyDirMu.Lock()
	defer tk.keyDirMu.Unlock()

	base := orig
	entry, ok := tk.keyDir[key]
	if ok && !entry.expired(now) {
		base, err = strconv.ParseInt(entry.Value, 10, 64)
		if err != nil {
			return nil, &rpcError{StatusLogicalInconsistency, "the existing record was not compatible"}
		}
	}

	result := base + num
	tk.keyDir[key] = KeyDirEntry{Value: strconv.FormatInt(result, 10), ExpiresAt: expiresAt(xt, now)}
	tk.cntSet.Add(1)

	var out protocol.Pairs
	out.Set("num", strconv.FormatInt(result, 10))
	return out, nil
}

func (tk *Tycoon) handleCommandIncrementDouble(params protocol.Pairs) (protocol.Pairs, *rpcError) {
	key, ok := params.Get("key")
	if !ok {
		return nil, errInvalidParameters
	}

	numStr, _ := params.Get("num")
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, errInvalidParameters
	}

	var orig float64
	if origStr, ok := params.Get("orig"); ok {
		if orig, err = strconv.ParseFloat(origStr, 64); err != nil {
			return nil, errInvalidParameters
		}
	}
	xt, rerr := optionalInt(params, "xt")
	if rerr != nil {
		return nil, rerr
	}

	now := time.Now()

	tk.keyDirMu.Lock()
	defer tk.keyDirMu.Unlock()

	base := orig
	entry, ok := tk.keyDir[key]
	if ok && !entry.expired(now) {
		base, err = strconv.ParseFloat(entry.Value, 64)
		if err != nil {
			return nil, &rpcError{StatusLogicalInconsistency, "the existing record was not compatible"}
		}
	}

	result := strconv.FormatFloat(base+num, 'f', 6, 64)
	tk.keyDir[key] = KeyDirEntry{Value: result, ExpiresAt: expiresAt(xt, now)}
	tk.cntSet.Add(1)

	var out protocol.Pairs
	out.Set("num", result)
	return out, nil
}

func (tk *Tycoon) handleCommandReport() protocol.Pairs {
	tk.cntMisc.Add(1)

	count, size := tk.stats()

	var out protocol.Pairs
	out.Set("conf_kt_version", Version)
	out.Set("db_0", "count="+strconv.Itoa(count)+" size="+strconv.Itoa(size)+" path=:")
	out.Set("db_total_count", strconv.Itoa(count))
	out.Set("db_total_size", strconv.Itoa(size))
	out.Set("cnt_set", strconv.FormatInt(tk.cntSet.Load(), 10))
	out.Set("cnt_get", strconv.FormatInt(tk.cntGet.Load(), 10))
	out.Set("cnt_get_misses", strconv.FormatInt(tk.cntGetMisses.Load(), 10))
	out.Set("cnt_remove", strconv.FormatInt(tk.cntRemove.Load(), 10))
	out.Set("cnt_misc", strconv.FormatInt(tk.cntMisc.Load(), 10))
	out.Set("serv_running_term", strconv.FormatFloat(time.Since(tk.startedAt).Seconds(), 'f', 6, 64))
	return out
}

func (tk *Tycoon) handleCommandStatus() protocol.Pairs {
	tk.cntMisc.Add(1)

	count, size := tk.stats()

	var out protocol.Pairs
	out.Set("count", strconv.Itoa(count))
	out.Set("size", strconv.Itoa(size))
	out.Set("path", ":")
	out.Set("type", "ProtoHashDB")
	return out
}

func (tk *Tycoon) lookup(key string, now time.Time) (KeyDirEntry, bool) {
	tk.keyDirMu.RLock()
	defer tk.keyDirMu.RUnlock()

	entry, ok := tk.keyDir[key]
	if !ok || entry.expired(now) {
		return KeyDirEntry{}, false
	}

	return entry, true
}

// stats counts live records and their key plus value bytes.
func (tk *Tycoon) stats() (count, size int) {
	now := time.Now()

	tk.keyDirMu.RLock()
	defer tk.keyDirMu.RUnlock()

	for key, entry := range tk.keyDir {
		if entry.expired(now) {
			continue
		}
		count++
		size += len(key) + len(entry.Value)
	}

	return count, size
}

func (tk *Tycoon) reply(c echo.Context, enc protocol.Encoding, out protocol.Pairs) error {
	body := protocol.Serialize(protocol.PairsToTable(out), enc)
	return c.Blob(http.StatusOK, enc.ContentType(), []byte(body))
}

// Errors are always sent unencoded so they stay readable in logs.
func (tk *Tycoon) replyError(c echo.Context, rerr *rpcError) error {
	body := "ERROR\t" + rerr.message
	return c.Blob(rerr.status, protocol.ContentTypePlain, []byte(body))
}

func optionalInt(params protocol.Pairs, name string) (int64, *rpcError) {
	s, ok := params.Get(name)
	if !ok {
		return 0, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errInvalidParameters
	}

	return n, nil
}
