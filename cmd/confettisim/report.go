package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	simPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	simMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	simBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(simBorder.GetForeground()).
		Padding(0, 2)
}

// isTerminal 输出目标不是终端时（管道、文件、测试缓冲区）打印纯文本
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderReport 把运行结果渲染成一张卡片，styled 为 false 时只输出对齐的文本
func renderReport(r Report, styled bool) string {
	rows := [][2]string{
		{"effect", r.Effect},
		{"pieces", fmt.Sprintf("%d", r.Count)},
		{"fps", fmt.Sprintf("%d", r.FPS)},
		{"frames", fmt.Sprintf("%d", r.Frames)},
		{"ticks", fmt.Sprintf("%d", r.Ticks)},
		{"publishes", fmt.Sprintf("%d", r.Publishes)},
		{"elapsed", r.Elapsed.String()},
		{"final state", r.FinalState.String()},
		{"visible at last tick", fmt.Sprintf("%d/%d", r.LastVisible, r.Count)},
		{"y range", fmt.Sprintf("%.1f%% .. %.1f%%", r.LastMinY, r.LastMaxY)},
		{"mean scale", fmt.Sprintf("%.3f", r.LastScale)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}
	title, label := simPrimary.Bold(true).Render, simMuted.Render
	if !styled {
		title, label = plain, plain
	}

	var body strings.Builder
	body.WriteString(title("Confetti run"))
	body.WriteString("\n")
	for _, row := range rows {
		body.WriteString("\n")
		body.WriteString(label(fmt.Sprintf("%-*s", width, row[0])))
		body.WriteString("  ")
		body.WriteString(row[1])
	}
	if !styled {
		return body.String()
	}
	return cardStyle().Render(body.String())
}

func plain(s ...string) string {
	return strings.Join(s, " ")
}
