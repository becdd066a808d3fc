// Package webui embute a interface estática que conversa com a API JSON.
// Ela é só a colaboradora de apresentação: formulário, listagem e a
// superfície de feedback com limpeza automática.
package webui

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

func Assets() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
