/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  list.go - Implementa l'operació LIST. Mostra les parts de cada
 *            imatge, una per línia.
 *
 */

package ops

import (
  "fmt"

  "github.com/adriagipas/sunxifw/imgs"
  "github.com/adriagipas/sunxifw/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func List ( args *utils.Args ) error {

  // No es suporten arguments
  if len(args.OpArgs) != 0 {
    return fmt.Errorf ( "(LIST) invalid arguments: %v", args.OpArgs )
  }

  // Executa operació
  print_name := len(args.Files)>1
  for name,file := range args.Files {
    if print_name {
      fmt.Printf("\n  %s) \"%s\"\n\n",name,file)
    }
    img,err := imgs.NewImage ( file )
    if err != nil {
      utils.Warning ( "%v", err )
      continue
    }
    parts,err := img.GetParts ()
    if err != nil {
      utils.Warning ( "%v", err )
      continue
    }
    for _,part := range parts {
      size := utils.NumBytesToStr ( uint64(part.Length) )
      for i := 0; i < 10-len(size); i++ {
        fmt.Printf ( " " )
      }
      fmt.Printf ( "%s  %-14s  %s\n", size, part.Type, part.Name )
    }
  }

  return nil

} // end List
