package logger

const StartupMsg = "The Pong 啟動 (display: %s)"
const ShutdownMsg = "The Pong 結束，比分 %d : %d"

const StateChangedMsg = "狀態切換 %s -> %s (key: %s)"
const QuitRequestedMsg = "收到離開訊號"

const PointScoredMsg = "%s 得分！目前比分 %d : %d"
const PaddleHitMsg = "球拍擊球，球速 %.1f"

const FontLoadedMsg = "字型載入完成: %s"
const FrameLimitMsg = "畫面更新率 %d fps"

const LevelReloadedMsg = "log level 已更新為 %s"
