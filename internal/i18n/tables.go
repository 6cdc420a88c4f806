package i18n

// tables holds the built-in locale string tables. The engine ships candidate
// data; everything the operator reads in the panel body resolves through
// these.
var tables = map[string]map[string]string{
	"en": {
		"panel.title":            "Unused model candidates",
		"panel.header":           "%d candidates · %d selected",
		"panel.mode":             "mode: %s",
		"panel.backup_folder":    "backup: %s",
		"panel.confidence":       "%d%%",
		"button.confirm":         "Confirm",
		"button.cancel":          "Cancel",
		"mode.dry_run":           "dry run",
		"mode.backup":            "move to backup",
		"mode.recycle_bin":       "move to recycle bin",
		"match.exact":            "exact",
		"match.partial":          "partial",
		"match.fuzzy":            "fuzzy",
		"match.path":             "path",
		"notify.scan_complete":   "Scan complete: %d models, %d flagged, %s reclaimable",
		"notify.cleanup_done":    "Cleanup complete: %d files processed",
		"notify.scan_cancelled":  "Scan cancellation requested",
		"notify.decision_sent":   "Decision sent: %d selected",
		"notify.cancel_sent":     "Pending cleanup cancelled",
		"notify.run_interrupted": "Run interrupted; pending cleanup cancelled",
		"footer.hints":           "click: toggle · wheel: scroll · /: search · esc: cancel scan · q: quit",
		"search.prompt":          "search: ",
	},
	"zh": {
		"panel.title":            "未使用模型候选",
		"panel.header":           "%d 个候选 · 已选 %d 个",
		"panel.mode":             "模式: %s",
		"panel.backup_folder":    "备份: %s",
		"panel.confidence":       "%d%%",
		"button.confirm":         "确认",
		"button.cancel":          "取消",
		"mode.dry_run":           "预览模式",
		"mode.backup":            "移动到备份",
		"mode.recycle_bin":       "移动到回收站",
		"match.exact":            "精确",
		"match.partial":          "部分",
		"match.fuzzy":            "模糊",
		"match.path":             "路径",
		"notify.scan_complete":   "扫描完成: %d 个模型, %d 个标记, 可释放 %s",
		"notify.cleanup_done":    "清理完成: 已处理 %d 个文件",
		"notify.scan_cancelled":  "已请求取消扫描",
		"notify.decision_sent":   "已发送决定: 选中 %d 个",
		"notify.cancel_sent":     "已取消待处理的清理",
		"notify.run_interrupted": "运行被中断; 已取消待处理的清理",
		"footer.hints":           "点击: 选择 · 滚轮: 滚动 · /: 搜索 · esc: 取消扫描 · q: 退出",
		"search.prompt":          "搜索: ",
	},
}
