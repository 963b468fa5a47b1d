// internal/i18n/messages.go
package i18n

import "github.com/nicksnyder/go-i18n/v2/i18n"

var englishMessages = []*i18n.Message{
	{ID: "welcome.title", Other: "# Welcome to the {{.Name}} game!"},
	{ID: "welcome.commands", Other: "**Use the following commands in the comments of this issue to play the game:**"},
	{ID: "help.chess", Other: "- `chess:x:y` to place your chess piece at position x,y\n  _e.g. `chess:1:a` or `chess:a:1` means the first row and first column._"},
	{ID: "help.color", Other: "- `color:color_name` to change your chess piece color, available colors: {{.Colors}}\n  _e.g. `color:red` to change your chess piece to red color._"},
	{ID: "help.robot", Other: "- `robot:add` to play against the computer, `robot:remove` to dismiss it before the first move."},
	{ID: "help.language", Other: "- `language:tag` to change the room language ({{.Languages}}), room creator only."},
	{ID: "result.tie", Other: "Tie"},
	{ID: "result.win", Other: "{{.Login}} wins"},
	{ID: "reply.body", Other: "{{.Mention}} Reply: [{{.Name}}]({{.URL}} \"Click to view the comment\")\n\n{{.Quote}}\n\n{{.Message}}"},
	{ID: "reply.parse_heading", Other: "Some commands in your message could not be understood:"},
	{ID: "room.created", Other: "Game room created: [{{.Title}}]({{.URL}}) click to join."},
	{ID: "game.ended", Other: "{{.Mentions}} Game has ended! {{.Result}}"},
	{ID: "err.ended", Other: "Game has ended!"},
	{ID: "err.room_full", Other: "Game room is full, cannot join!"},
	{ID: "err.wait_turn", Other: "You have already placed chess piece at {{.OX}},{{.OY}}, please wait for your opponent's move."},
	{ID: "err.occupied", Other: "{{.OX}},{{.OY}} already has a chess piece by {{.Login}}, please choose another position."},
	{ID: "err.not_seated", Other: "You are not in the game room, cannot change your color!"},
	{ID: "err.color_used", Other: "`{{.Color}}` chess piece has been used, please choose another color.\ne.g. {{.Colors}}"},
	{ID: "err.robot_exists", Other: "A robot player is already in the game room."},
	{ID: "err.robot_full", Other: "Game room is full, cannot add a robot player."},
	{ID: "err.robot_none", Other: "There is no robot player to remove."},
	{ID: "err.robot_started", Other: "The game has already started, the robot player cannot be removed."},
	{ID: "err.language_creator", Other: "Only the room creator can change the language."},
	{ID: "err.parse_coordinate", Other: "coordinate must be row 1-3 and column a-c, e.g. `chess:1:a` or `chess:a:1`"},
	{ID: "err.parse_color", Other: "unknown color `{{.Value}}`, available colors: {{.Colors}}"},
	{ID: "err.parse_language", Other: "unsupported language `{{.Value}}`, available: {{.Languages}}"},
	{ID: "err.parse_robot", Other: "robot command must be `robot:add` or `robot:remove`"},
}

var chineseMessages = []*i18n.Message{
	{ID: "welcome.title", Other: "# 欢迎来到 {{.Name}} 游戏！"},
	{ID: "welcome.commands", Other: "**在本 issue 的评论中使用以下命令进行游戏：**"},
	{ID: "help.chess", Other: "- `chess:x:y` 在 x,y 位置落子\n  _例如 `chess:1:a` 或 `chess:a:1` 表示第一行第一列。_"},
	{ID: "help.color", Other: "- `color:color_name` 更换棋子颜色，可选颜色：{{.Colors}}\n  _例如 `color:red` 将棋子换成红色。_"},
	{ID: "help.robot", Other: "- `robot:add` 与电脑对战，`robot:remove` 在开局前将其移除。"},
	{ID: "help.language", Other: "- `language:tag` 更改房间语言（{{.Languages}}），仅房主可用。"},
	{ID: "result.tie", Other: "平局"},
	{ID: "result.win", Other: "{{.Login}} 获胜"},
	{ID: "reply.body", Other: "{{.Mention}} 回复：[{{.Name}}]({{.URL}} \"点击查看评论\")\n\n{{.Quote}}\n\n{{.Message}}"},
	{ID: "reply.parse_heading", Other: "你消息中的部分命令无法识别："},
	{ID: "room.created", Other: "游戏房间已创建：[{{.Title}}]({{.URL}}) 点击加入。"},
	{ID: "game.ended", Other: "{{.Mentions}} 游戏结束！{{.Result}}"},
	{ID: "err.ended", Other: "游戏已经结束！"},
	{ID: "err.room_full", Other: "游戏房间已满，无法加入！"},
	{ID: "err.wait_turn", Other: "你已经在 {{.OX}},{{.OY}} 落子，请等待对手行动。"},
	{ID: "err.occupied", Other: "{{.OX}},{{.OY}} 已经有 {{.Login}} 的棋子，请选择其他位置。"},
	{ID: "err.not_seated", Other: "你不在游戏房间中，无法更换颜色！"},
	{ID: "err.color_used", Other: "`{{.Color}}` 颜色的棋子已被使用，请选择其他颜色。\n例如 {{.Colors}}"},
	{ID: "err.robot_exists", Other: "游戏房间中已经有机器人玩家。"},
	{ID: "err.robot_full", Other: "游戏房间已满，无法加入机器人玩家。"},
	{ID: "err.robot_none", Other: "没有可移除的机器人玩家。"},
	{ID: "err.robot_started", Other: "游戏已经开始，无法移除机器人玩家。"},
	{ID: "err.language_creator", Other: "只有房主可以更改语言。"},
	{ID: "err.parse_coordinate", Other: "坐标必须是行 1-3 和列 a-c，例如 `chess:1:a` 或 `chess:a:1`"},
	{ID: "err.parse_color", Other: "未知颜色 `{{.Value}}`，可选颜色：{{.Colors}}"},
	{ID: "err.parse_language", Other: "不支持的语言 `{{.Value}}`，可选：{{.Languages}}"},
	{ID: "err.parse_robot", Other: "robot 命令必须是 `robot:add` 或 `robot:remove`"},
}
