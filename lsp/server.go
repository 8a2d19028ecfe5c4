// Package lsp serves parse diagnostics for JSON documents with line
// comments over the Language Server Protocol.
package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/jcomb/jsonc"
	"github.com/dhamidi/jcomb/workspace"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "jcomb"

var log = commonlog.GetLogger("jcomb.lsp")

type Server struct {
	workspace *workspace.Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string) *Server {
	ls := &Server{
		workspace: workspace.New("."),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace.SetRootDir(rootDir)
	log.Infof("workspace root: %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f := ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publish(ctx, params.TextDocument.URI, f)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			f := ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publish(ctx, params.TextDocument.URI, f)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.RemoveFile(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var f *workspace.File
	if params.Text != nil {
		f = ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else {
		if err := ls.workspace.ScanFile(path); err != nil {
			return nil
		}
		f = ls.workspace.GetFile(path)
	}
	ls.publish(ctx, params.TextDocument.URI, f)
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, f *workspace.File) {
	diagnostics := Diagnostics(f)
	log.Debugf("publish %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnostics reports the parse failure of f, if any. The range covers the
// rest of the line where parsing stopped.
func Diagnostics(f *workspace.File) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if f == nil || f.OK() {
		return diagnostics
	}

	var perr *jsonc.ParseError
	if !errors.As(f.ParseErr, &perr) {
		return diagnostics
	}

	rest := perr.Remainder
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	start := protocol.Position{
		Line:      protocol.UInteger(perr.Pos.Line - 1),
		Character: protocol.UInteger(perr.Pos.Column - 1),
	}
	end := start
	end.Character += protocol.UInteger(utf8.RuneCountInString(rest))

	severity := protocol.DiagnosticSeverityError
	source := lsName
	message := "unexpected end of input"
	if perr.Remainder != "" {
		message = "cannot parse from here"
	}

	return append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	})
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
