// Package web 内嵌聊天组件的静态资源
//
// 组件侧的会话存储、回放和 markdown 子集渲染都在 static/chat.js 中实现，
// 由后端一起打包分发，部署时没有独立的前端构建步骤。
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:static
var staticFS embed.FS

// Assets 返回静态资源文件系统（根目录即 static/）
func Assets() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return http.FS(sub)
}
