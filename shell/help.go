package shell

import "io"

const generalUsage = `commands:
  <row> <col> <direction>   make a move, e.g. "3 0 right"
  board                     show the current board
  hint                      show the first move of a full solution
  solve                     show every move of a full solution
  undo                      undo the last move
  new                       restart at the standard opening
  new <row> <col>           restart with the single empty hole at (row, col)
  help [topic]              show this message, or help on a topic
  quit                      exit
`

var helpTopics = map[string]string{
	"move": `a move is "<row> <col> <direction>", where direction is one of
up, down, left, or right, e.g. "3 0 right" jumps the peg at (3,0) two
cells to the right.`,
	"hint":  "hint shows the first move of a full solution from the current board, if one exists.",
	"solve": "solve shows every move of a full solution from the current board, if one exists.",
}

func usage(w io.Writer) {
	io.WriteString(w, generalUsage)
}

func usageTopic(w io.Writer, topic string) {
	text, ok := helpTopics[topic]
	if !ok {
		io.WriteString(w, "there is no help text for the topic \""+topic+"\"\n")
		return
	}
	io.WriteString(w, text+"\n")
}
