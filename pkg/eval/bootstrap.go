package eval

import (
	"github.com/malcore/golisp/pkg/reader"
)

// bootstrapProgram holds the forms every session starts with: a handful of
// functions and macros that are far more natural to define in the language
// itself than to hand-build as Go values.
var bootstrapProgram = []string{
	`(def! not (fn* (a) (if a false true)))`,

	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) ")")))))`,

	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,

	`(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) ` + "`" + `(let* (or_FIXME ~(first xs)) (if or_FIXME or_FIXME (or ~@(rest xs))))))))`,
}

// bootstrap evaluates bootstrapProgram in the root environment once, at
// construction time.
func (ev *Evaluator) bootstrap() {
	for _, src := range bootstrapProgram {
		form, ok, err := reader.Read(src)
		if err != nil {
			panic("malformed bootstrap form: " + err.Error())
		}
		if !ok {
			continue
		}
		if _, err := ev.EvalTop(form); err != nil {
			panic("bootstrap evaluation failed: " + err.Error())
		}
	}
}
